package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
)

func TestValidateCreateTemaInput(t *testing.T) {
	// Assert: валидные имена проходят
	assert.NoError(t, ValidateCreateTemaInput("Historia"))
	assert.NoError(t, ValidateCreateTemaInput("Matemáticas"))

	// Assert: пустое и невалидное имя — ErrValidation
	assert.ErrorIs(t, ValidateCreateTemaInput(""), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateCreateTemaInput("ab"), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateCreateTemaInput("con espacios no"), apperrors.ErrValidation)
}

func TestValidateIdentifyTemaInput(t *testing.T) {
	// Идентификация по ID не проверяет шаблон имени
	assert.NoError(t, ValidateIdentifyTemaInput(0))
	assert.NoError(t, ValidateIdentifyTemaInput(42))
	assert.ErrorIs(t, ValidateIdentifyTemaInput(-1), apperrors.ErrValidation)
}

func TestTemaService_Create(t *testing.T) {
	// Arrange
	temaRepo := new(MockTemaRepository)
	svc := NewTemaService(temaRepo)

	temaRepo.On("Create", &entity.Tema{Tema: "Historia"}).
		Run(func(args mock.Arguments) {
			// База присваивает сгенерированный ID
			args.Get(0).(*entity.Tema).IDTema = 1
		}).
		Return(nil).
		Once()

	// Act
	tema, err := svc.Create("Historia")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), tema.IDTema)
	assert.Equal(t, "Historia", tema.Tema)
	temaRepo.AssertExpectations(t)
}

func TestTemaService_Create_InvalidName(t *testing.T) {
	// Arrange
	temaRepo := new(MockTemaRepository)
	svc := NewTemaService(temaRepo)

	// Act
	tema, err := svc.Create("a!")

	// Assert: валидация выполняется до обращения к репозиторию
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, tema)
	temaRepo.AssertNotCalled(t, "Create")
}

func TestTemaService_Create_Duplicate(t *testing.T) {
	// Arrange
	temaRepo := new(MockTemaRepository)
	svc := NewTemaService(temaRepo)

	temaRepo.On("Create", &entity.Tema{Tema: "Historia"}).
		Return(apperrors.ErrConflict).
		Once()

	// Act
	tema, err := svc.Create("Historia")

	// Assert: дубликат — отклоненная операция, а не тихая перезапись
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, tema)
	temaRepo.AssertExpectations(t)
}

func TestTemaService_Update_NotFound(t *testing.T) {
	// Arrange
	temaRepo := new(MockTemaRepository)
	svc := NewTemaService(temaRepo)

	temaRepo.On("Update", uint(99), "Geografía").
		Return(apperrors.ErrNotFound).
		Once()

	// Act & Assert
	assert.ErrorIs(t, svc.Update(99, "Geografía"), apperrors.ErrNotFound)
	temaRepo.AssertExpectations(t)
}

func TestTemaService_Update_NameNotRevalidated(t *testing.T) {
	// Arrange: имя с пробелом не проходит шаблон создания, но путь
	// идентификации по ID шаблон не перепроверяет
	temaRepo := new(MockTemaRepository)
	svc := NewTemaService(temaRepo)

	temaRepo.On("Update", uint(1), "nombre con espacios").
		Return(nil).
		Once()

	// Act & Assert
	assert.NoError(t, svc.Update(1, "nombre con espacios"))
	temaRepo.AssertExpectations(t)
}

func TestTemaService_Delete_NotFound(t *testing.T) {
	// Arrange
	temaRepo := new(MockTemaRepository)
	svc := NewTemaService(temaRepo)

	temaRepo.On("Delete", uint(123)).
		Return(apperrors.ErrNotFound).
		Once()

	// Act & Assert
	assert.ErrorIs(t, svc.Delete(123), apperrors.ErrNotFound)
	temaRepo.AssertExpectations(t)
}
