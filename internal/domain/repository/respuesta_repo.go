package repository

import (
	"github.com/yourusername/quizbank-api/internal/domain/entity"
)

// RespuestaRepository определяет методы для работы с ответами
type RespuestaRepository interface {
	List() ([]entity.Respuesta, error)
	GetByID(id uint) (*entity.Respuesta, error)
	Create(respuesta *entity.Respuesta) error
	Update(respuesta *entity.Respuesta) error
	Delete(id uint) error

	// DeleteByPreguntaID удаляет все ответы вопроса (шаг каскадного
	// удаления). Ноль удаленных строк — не ошибка: у вопроса может
	// не быть ответов.
	DeleteByPreguntaID(preguntaID uint) error

	// GetByPreguntaIDs возвращает ответы для набора вопросов
	// в стабильном порядке (по id)
	GetByPreguntaIDs(preguntaIDs []uint) ([]entity.Respuesta, error)
}
