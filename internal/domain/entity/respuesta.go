package entity

// Respuesta представляет вариант ответа на вопрос.
// EsCorrecta не скрывается от клиента: экзамен отдается вместе с флагом.
type Respuesta struct {
	IDRespuesta uint   `gorm:"column:id_respuesta;primaryKey" json:"id_respuesta"`
	IDPregunta  uint   `gorm:"column:id_pregunta;not null;index" json:"id_pregunta"`
	Respuesta   string `gorm:"column:respuesta;size:500;not null" json:"respuesta"`
	EsCorrecta  bool   `gorm:"column:es_correcta;not null" json:"es_correcta"`
}

// TableName определяет имя таблицы для GORM
func (Respuesta) TableName() string {
	return "respuestas"
}
