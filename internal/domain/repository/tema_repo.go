package repository

import (
	"github.com/yourusername/quizbank-api/internal/domain/entity"
)

// TemaRepository определяет методы для работы с темами
type TemaRepository interface {
	List() ([]entity.Tema, error)
	GetByID(id uint) (*entity.Tema, error)
	Create(tema *entity.Tema) error
	Update(id uint, nombre string) error
	Delete(id uint) error

	// GetIDsByNombres возвращает идентификаторы тем по списку имен.
	// Имена без совпадений молча отбрасываются: результат может быть
	// короче входа или пустым, это не ошибка.
	GetIDsByNombres(nombres []string) ([]uint, error)
}
