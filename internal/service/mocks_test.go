package service

import (
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
)

// ============================================================================
// Моки репозиториев для сервисных тестов
// ============================================================================

// MockTemaRepository реализует repository.TemaRepository
type MockTemaRepository struct {
	mock.Mock
}

func (m *MockTemaRepository) List() ([]entity.Tema, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tema), args.Error(1)
}

func (m *MockTemaRepository) GetByID(id uint) (*entity.Tema, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tema), args.Error(1)
}

func (m *MockTemaRepository) Create(tema *entity.Tema) error {
	args := m.Called(tema)
	return args.Error(0)
}

func (m *MockTemaRepository) Update(id uint, nombre string) error {
	args := m.Called(id, nombre)
	return args.Error(0)
}

func (m *MockTemaRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTemaRepository) GetIDsByNombres(nombres []string) ([]uint, error) {
	args := m.Called(nombres)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockPreguntaRepository реализует repository.PreguntaRepository
type MockPreguntaRepository struct {
	mock.Mock
}

func (m *MockPreguntaRepository) List() ([]entity.Pregunta, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pregunta), args.Error(1)
}

func (m *MockPreguntaRepository) GetByID(id uint) (*entity.Pregunta, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pregunta), args.Error(1)
}

func (m *MockPreguntaRepository) Create(pregunta *entity.Pregunta) error {
	args := m.Called(pregunta)
	return args.Error(0)
}

func (m *MockPreguntaRepository) Update(pregunta *entity.Pregunta) error {
	args := m.Called(pregunta)
	return args.Error(0)
}

func (m *MockPreguntaRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPreguntaRepository) GetByTemasAndDificultad(temaIDs []uint, dificultad entity.Dificultad) ([]entity.Pregunta, error) {
	args := m.Called(temaIDs, dificultad)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pregunta), args.Error(1)
}

// MockRespuestaRepository реализует repository.RespuestaRepository
type MockRespuestaRepository struct {
	mock.Mock
}

func (m *MockRespuestaRepository) List() ([]entity.Respuesta, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Respuesta), args.Error(1)
}

func (m *MockRespuestaRepository) GetByID(id uint) (*entity.Respuesta, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Respuesta), args.Error(1)
}

func (m *MockRespuestaRepository) Create(respuesta *entity.Respuesta) error {
	args := m.Called(respuesta)
	return args.Error(0)
}

func (m *MockRespuestaRepository) Update(respuesta *entity.Respuesta) error {
	args := m.Called(respuesta)
	return args.Error(0)
}

func (m *MockRespuestaRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRespuestaRepository) DeleteByPreguntaID(preguntaID uint) error {
	args := m.Called(preguntaID)
	return args.Error(0)
}

func (m *MockRespuestaRepository) GetByPreguntaIDs(preguntaIDs []uint) ([]entity.Respuesta, error) {
	args := m.Called(preguntaIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Respuesta), args.Error(1)
}
