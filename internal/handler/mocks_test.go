package handler

import (
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
)

// ============================================================================
// Моки репозиториев для тестов обработчиков: обработчики держат
// конкретные сервисы, поэтому сервис конструируется настоящий,
// а подменяется слой репозиториев
// ============================================================================

// MockTemaRepo реализует repository.TemaRepository
type MockTemaRepo struct {
	mock.Mock
}

func (m *MockTemaRepo) List() ([]entity.Tema, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tema), args.Error(1)
}

func (m *MockTemaRepo) GetByID(id uint) (*entity.Tema, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tema), args.Error(1)
}

func (m *MockTemaRepo) Create(tema *entity.Tema) error {
	args := m.Called(tema)
	return args.Error(0)
}

func (m *MockTemaRepo) Update(id uint, nombre string) error {
	args := m.Called(id, nombre)
	return args.Error(0)
}

func (m *MockTemaRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTemaRepo) GetIDsByNombres(nombres []string) ([]uint, error) {
	args := m.Called(nombres)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockPreguntaRepo реализует repository.PreguntaRepository
type MockPreguntaRepo struct {
	mock.Mock
}

func (m *MockPreguntaRepo) List() ([]entity.Pregunta, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pregunta), args.Error(1)
}

func (m *MockPreguntaRepo) GetByID(id uint) (*entity.Pregunta, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pregunta), args.Error(1)
}

func (m *MockPreguntaRepo) Create(pregunta *entity.Pregunta) error {
	args := m.Called(pregunta)
	return args.Error(0)
}

func (m *MockPreguntaRepo) Update(pregunta *entity.Pregunta) error {
	args := m.Called(pregunta)
	return args.Error(0)
}

func (m *MockPreguntaRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPreguntaRepo) GetByTemasAndDificultad(temaIDs []uint, dificultad entity.Dificultad) ([]entity.Pregunta, error) {
	args := m.Called(temaIDs, dificultad)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pregunta), args.Error(1)
}

// MockRespuestaRepo реализует repository.RespuestaRepository
type MockRespuestaRepo struct {
	mock.Mock
}

func (m *MockRespuestaRepo) List() ([]entity.Respuesta, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Respuesta), args.Error(1)
}

func (m *MockRespuestaRepo) GetByID(id uint) (*entity.Respuesta, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Respuesta), args.Error(1)
}

func (m *MockRespuestaRepo) Create(respuesta *entity.Respuesta) error {
	args := m.Called(respuesta)
	return args.Error(0)
}

func (m *MockRespuestaRepo) Update(respuesta *entity.Respuesta) error {
	args := m.Called(respuesta)
	return args.Error(0)
}

func (m *MockRespuestaRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRespuestaRepo) DeleteByPreguntaID(preguntaID uint) error {
	args := m.Called(preguntaID)
	return args.Error(0)
}

func (m *MockRespuestaRepo) GetByPreguntaIDs(preguntaIDs []uint) ([]entity.Respuesta, error) {
	args := m.Called(preguntaIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Respuesta), args.Error(1)
}
