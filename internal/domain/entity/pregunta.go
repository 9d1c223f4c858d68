package entity

// Dificultad представляет уровень сложности вопроса
type Dificultad string

// Домен сложности хранилища
const (
	DificultadFacil   Dificultad = "facil"
	DificultadMedia   Dificultad = "media"
	DificultadDificil Dificultad = "dificil"
)

// Valida проверяет, что значение входит в домен сложности
func (d Dificultad) Valida() bool {
	switch d {
	case DificultadFacil, DificultadMedia, DificultadDificil:
		return true
	}
	return false
}

// Pregunta представляет вопрос, принадлежащий ровно одной теме
type Pregunta struct {
	IDPregunta uint       `gorm:"column:id_pregunta;primaryKey" json:"id_pregunta"`
	IDTema     uint       `gorm:"column:id_tema;not null;index" json:"id_tema"`
	Pregunta   string     `gorm:"column:pregunta;size:500;not null" json:"pregunta"`
	Dificultad Dificultad `gorm:"column:dificultad;size:20;not null" json:"dificultad"`
}

// TableName определяет имя таблицы для GORM
func (Pregunta) TableName() string {
	return "preguntas"
}
