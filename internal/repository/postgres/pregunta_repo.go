package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
)

// PreguntaRepo реализует repository.PreguntaRepository
type PreguntaRepo struct {
	db *gorm.DB
}

// NewPreguntaRepo создает новый репозиторий вопросов
func NewPreguntaRepo(db *gorm.DB) *PreguntaRepo {
	return &PreguntaRepo{db: db}
}

// List возвращает все вопросы
func (r *PreguntaRepo) List() ([]entity.Pregunta, error) {
	var preguntas []entity.Pregunta
	if err := r.db.Order("id_pregunta").Find(&preguntas).Error; err != nil {
		return nil, err
	}
	return preguntas, nil
}

// GetByID возвращает вопрос по ID
func (r *PreguntaRepo) GetByID(id uint) (*entity.Pregunta, error) {
	var pregunta entity.Pregunta
	err := r.db.First(&pregunta, "id_pregunta = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &pregunta, nil
}

// Create создает новый вопрос
func (r *PreguntaRepo) Create(pregunta *entity.Pregunta) error {
	return r.db.Create(pregunta).Error
}

// Update обновляет вопрос целиком. Ноль затронутых строк — ErrNotFound.
func (r *PreguntaRepo) Update(pregunta *entity.Pregunta) error {
	result := r.db.Model(&entity.Pregunta{}).
		Where("id_pregunta = ?", pregunta.IDPregunta).
		Updates(map[string]interface{}{
			"id_tema":    pregunta.IDTema,
			"pregunta":   pregunta.Pregunta,
			"dificultad": pregunta.Dificultad,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет вопрос по ID
func (r *PreguntaRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Pregunta{}, "id_pregunta = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetByTemasAndDificultad возвращает вопросы указанных тем и сложности.
// Порядок стабильный (по id): случайную перестановку делает сервис,
// чтобы она была воспроизводимой в тестах.
func (r *PreguntaRepo) GetByTemasAndDificultad(temaIDs []uint, dificultad entity.Dificultad) ([]entity.Pregunta, error) {
	if len(temaIDs) == 0 {
		return []entity.Pregunta{}, nil
	}
	var preguntas []entity.Pregunta
	err := r.db.Where("id_tema IN ? AND dificultad = ?", temaIDs, dificultad).
		Order("id_pregunta").
		Find(&preguntas).Error
	if err != nil {
		return nil, err
	}
	return preguntas, nil
}
