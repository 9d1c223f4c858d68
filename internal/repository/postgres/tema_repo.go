package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
)

// TemaRepo реализует repository.TemaRepository
type TemaRepo struct {
	db *gorm.DB
}

// NewTemaRepo создает новый репозиторий тем
func NewTemaRepo(db *gorm.DB) *TemaRepo {
	return &TemaRepo{db: db}
}

// List возвращает все темы
func (r *TemaRepo) List() ([]entity.Tema, error) {
	var temas []entity.Tema
	if err := r.db.Order("id_tema").Find(&temas).Error; err != nil {
		return nil, err
	}
	return temas, nil
}

// GetByID возвращает тему по ID
func (r *TemaRepo) GetByID(id uint) (*entity.Tema, error) {
	var tema entity.Tema
	err := r.db.First(&tema, "id_tema = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &tema, nil
}

// Create создает новую тему. Дубликат имени транслируется в ErrConflict:
// арбитром уникальности выступает сама база.
func (r *TemaRepo) Create(tema *entity.Tema) error {
	if err := r.db.Create(tema).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// Update обновляет имя темы. Ноль затронутых строк означает ErrNotFound.
func (r *TemaRepo) Update(id uint, nombre string) error {
	result := r.db.Model(&entity.Tema{}).Where("id_tema = ?", id).Update("tema", nombre)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return apperrors.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет тему по ID
func (r *TemaRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Tema{}, "id_tema = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetIDsByNombres возвращает ID тем по именам (IN-выборка).
// Имена без совпадений молча отбрасываются.
func (r *TemaRepo) GetIDsByNombres(nombres []string) ([]uint, error) {
	if len(nombres) == 0 {
		return []uint{}, nil
	}
	var ids []uint
	err := r.db.Model(&entity.Tema{}).
		Where("tema IN ?", nombres).
		Order("id_tema").
		Pluck("id_tema", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
