package entity

import "regexp"

// nombreTemaPattern — допустимое имя темы: 3–20 букв (Unicode) или цифр.
var nombreTemaPattern = regexp.MustCompile(`^[\p{L}0-9]{3,20}$`)

// Tema представляет тему — именованную категорию вопросов
type Tema struct {
	IDTema uint   `gorm:"column:id_tema;primaryKey" json:"id_tema"`
	Tema   string `gorm:"column:tema;size:20;not null;uniqueIndex" json:"tema"`
}

// TableName определяет имя таблицы для GORM
func (Tema) TableName() string {
	return "temas"
}

// NombreTemaValido проверяет имя темы по доменному шаблону.
// Буквы любого алфавита разрешены, пробелы и знаки препинания — нет.
func NombreTemaValido(nombre string) bool {
	return nombreTemaPattern.MatchString(nombre)
}
