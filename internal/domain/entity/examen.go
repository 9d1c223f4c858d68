package entity

// PreguntaExamen — вопрос в составе собранного экзамена: текст плюс
// перемешанные варианты ответов. Вопрос без ответов остается в экзамене
// с пустым (не nil) списком.
type PreguntaExamen struct {
	IDPregunta uint        `json:"id_pregunta"`
	Pregunta   string      `json:"pregunta"`
	Respuestas []Respuesta `json:"respuestas"`
}

// Examen — временный объект, собираемый на каждый запрос и нигде
// не сохраняемый
type Examen struct {
	Preguntas []PreguntaExamen `json:"preguntas"`
}
