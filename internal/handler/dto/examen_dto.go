package dto

import (
	"github.com/yourusername/quizbank-api/internal/domain/entity"
)

// RespuestaExamenResponse представляет вариант ответа внутри экзамена
type RespuestaExamenResponse struct {
	IDRespuesta uint   `json:"id_respuesta"`
	IDPregunta  uint   `json:"id_pregunta"`
	Respuesta   string `json:"respuesta"`
	EsCorrecta  bool   `json:"es_correcta"`
}

// PreguntaExamenResponse представляет вопрос экзамена с его ответами
type PreguntaExamenResponse struct {
	IDPregunta uint                      `json:"id_pregunta"`
	Pregunta   string                    `json:"pregunta"`
	Respuestas []RespuestaExamenResponse `json:"respuestas"`
}

// ExamenResponse представляет собранный экзамен в формате для клиента
type ExamenResponse struct {
	Preguntas []PreguntaExamenResponse `json:"preguntas"`
}

// NewExamenResponse создает DTO для экзамена
func NewExamenResponse(examen *entity.Examen) *ExamenResponse {
	if examen == nil {
		return nil
	}

	preguntas := make([]PreguntaExamenResponse, len(examen.Preguntas))
	for i, p := range examen.Preguntas {
		respuestas := make([]RespuestaExamenResponse, len(p.Respuestas))
		for j, r := range p.Respuestas {
			respuestas[j] = RespuestaExamenResponse{
				IDRespuesta: r.IDRespuesta,
				IDPregunta:  r.IDPregunta,
				Respuesta:   r.Respuesta,
				EsCorrecta:  r.EsCorrecta,
			}
		}
		preguntas[i] = PreguntaExamenResponse{
			IDPregunta: p.IDPregunta,
			Pregunta:   p.Pregunta,
			Respuestas: respuestas,
		}
	}

	return &ExamenResponse{Preguntas: preguntas}
}
