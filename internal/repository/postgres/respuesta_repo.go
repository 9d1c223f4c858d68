package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
)

// RespuestaRepo реализует repository.RespuestaRepository
type RespuestaRepo struct {
	db *gorm.DB
}

// NewRespuestaRepo создает новый репозиторий ответов
func NewRespuestaRepo(db *gorm.DB) *RespuestaRepo {
	return &RespuestaRepo{db: db}
}

// List возвращает все ответы
func (r *RespuestaRepo) List() ([]entity.Respuesta, error) {
	var respuestas []entity.Respuesta
	if err := r.db.Order("id_respuesta").Find(&respuestas).Error; err != nil {
		return nil, err
	}
	return respuestas, nil
}

// GetByID возвращает ответ по ID
func (r *RespuestaRepo) GetByID(id uint) (*entity.Respuesta, error) {
	var respuesta entity.Respuesta
	err := r.db.First(&respuesta, "id_respuesta = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &respuesta, nil
}

// Create создает новый ответ
func (r *RespuestaRepo) Create(respuesta *entity.Respuesta) error {
	return r.db.Create(respuesta).Error
}

// Update обновляет ответ целиком. Ноль затронутых строк — ErrNotFound.
func (r *RespuestaRepo) Update(respuesta *entity.Respuesta) error {
	result := r.db.Model(&entity.Respuesta{}).
		Where("id_respuesta = ?", respuesta.IDRespuesta).
		Updates(map[string]interface{}{
			"id_pregunta": respuesta.IDPregunta,
			"respuesta":   respuesta.Respuesta,
			"es_correcta": respuesta.EsCorrecta,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет ответ по ID
func (r *RespuestaRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Respuesta{}, "id_respuesta = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByPreguntaID удаляет все ответы вопроса.
// Ноль удаленных строк допустим: у вопроса может не быть ответов.
func (r *RespuestaRepo) DeleteByPreguntaID(preguntaID uint) error {
	return r.db.Delete(&entity.Respuesta{}, "id_pregunta = ?", preguntaID).Error
}

// GetByPreguntaIDs возвращает ответы для набора вопросов в стабильном
// порядке (по id)
func (r *RespuestaRepo) GetByPreguntaIDs(preguntaIDs []uint) ([]entity.Respuesta, error) {
	if len(preguntaIDs) == 0 {
		return []entity.Respuesta{}, nil
	}
	var respuestas []entity.Respuesta
	err := r.db.Where("id_pregunta IN ?", preguntaIDs).
		Order("id_respuesta").
		Find(&respuestas).Error
	if err != nil {
		return nil, err
	}
	return respuestas, nil
}
