package repository

import (
	"github.com/yourusername/quizbank-api/internal/domain/entity"
)

// PreguntaRepository определяет методы для работы с вопросами
type PreguntaRepository interface {
	List() ([]entity.Pregunta, error)
	GetByID(id uint) (*entity.Pregunta, error)
	Create(pregunta *entity.Pregunta) error
	Update(pregunta *entity.Pregunta) error
	Delete(id uint) error

	// GetByTemasAndDificultad возвращает вопросы указанных тем и сложности
	// в стабильном порядке (по id). Перемешивание — забота сервиса.
	GetByTemasAndDificultad(temaIDs []uint, dificultad entity.Dificultad) ([]entity.Pregunta, error)
}
