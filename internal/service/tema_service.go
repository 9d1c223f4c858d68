package service

import (
	"fmt"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	"github.com/yourusername/quizbank-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
)

// ValidateCreateTemaInput проверяет входные данные для создания темы.
// Имя обязательно и должно соответствовать шаблону 3–20 букв/цифр.
func ValidateCreateTemaInput(nombre string) error {
	if nombre == "" {
		return fmt.Errorf("%w: el campo 'tema' es obligatorio", apperrors.ErrValidation)
	}
	if !entity.NombreTemaValido(nombre) {
		return fmt.Errorf("%w: el nombre del tema debe tener de 3 a 20 letras o dígitos", apperrors.ErrValidation)
	}
	return nil
}

// ValidateIdentifyTemaInput проверяет идентификацию темы по ID для
// update/delete. Имя в этом пути намеренно не перепроверяется:
// достаточно неотрицательного ID. В HTTP-пути отрицательные ID
// отсекает ExtractUintParam ещё до сервиса, поэтому ветка id < 0
// срабатывает только при прямом вызове сервиса.
func ValidateIdentifyTemaInput(id int64) error {
	if id < 0 {
		return fmt.Errorf("%w: el 'id_tema' debe ser un número no negativo", apperrors.ErrValidation)
	}
	return nil
}

// TemaService предоставляет методы для работы с темами
type TemaService struct {
	temaRepo repository.TemaRepository
}

// NewTemaService создает новый сервис тем
func NewTemaService(temaRepo repository.TemaRepository) *TemaService {
	return &TemaService{temaRepo: temaRepo}
}

// List возвращает все темы
func (s *TemaService) List() ([]entity.Tema, error) {
	return s.temaRepo.List()
}

// GetByID возвращает тему по ID
func (s *TemaService) GetByID(id uint) (*entity.Tema, error) {
	return s.temaRepo.GetByID(id)
}

// Create создает новую тему. Валидация выполняется до обращения к базе;
// уникальность имени арбитрирует сама база (дубликат → ErrConflict).
func (s *TemaService) Create(nombre string) (*entity.Tema, error) {
	if err := ValidateCreateTemaInput(nombre); err != nil {
		return nil, err
	}
	tema := &entity.Tema{Tema: nombre}
	if err := s.temaRepo.Create(tema); err != nil {
		return nil, err
	}
	return tema, nil
}

// Update обновляет имя темы по ID. Шаблон имени в этом пути не
// перепроверяется (документированное поведение исходного контракта).
func (s *TemaService) Update(id uint, nombre string) error {
	if err := ValidateIdentifyTemaInput(int64(id)); err != nil {
		return err
	}
	return s.temaRepo.Update(id, nombre)
}

// Delete удаляет тему по ID
func (s *TemaService) Delete(id uint) error {
	if err := ValidateIdentifyTemaInput(int64(id)); err != nil {
		return err
	}
	return s.temaRepo.Delete(id)
}
