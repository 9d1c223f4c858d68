package service

import (
	"fmt"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	"github.com/yourusername/quizbank-api/internal/domain/repository"
)

// PreguntaService предоставляет методы для работы с вопросами
type PreguntaService struct {
	preguntaRepo  repository.PreguntaRepository
	respuestaRepo repository.RespuestaRepository
}

// NewPreguntaService создает новый сервис вопросов
func NewPreguntaService(
	preguntaRepo repository.PreguntaRepository,
	respuestaRepo repository.RespuestaRepository,
) *PreguntaService {
	return &PreguntaService{
		preguntaRepo:  preguntaRepo,
		respuestaRepo: respuestaRepo,
	}
}

// List возвращает все вопросы
func (s *PreguntaService) List() ([]entity.Pregunta, error) {
	return s.preguntaRepo.List()
}

// GetByID возвращает вопрос по ID
func (s *PreguntaService) GetByID(id uint) (*entity.Pregunta, error) {
	return s.preguntaRepo.GetByID(id)
}

// Create создает новый вопрос
func (s *PreguntaService) Create(pregunta *entity.Pregunta) error {
	return s.preguntaRepo.Create(pregunta)
}

// Update обновляет вопрос по ID
func (s *PreguntaService) Update(pregunta *entity.Pregunta) error {
	return s.preguntaRepo.Update(pregunta)
}

// Delete удаляет вопрос вместе с его ответами. Каскад управляется
// приложением и не атомарен: сначала удаляются ответы, и если этот шаг
// падает, вопрос не трогаем — компенсирующего отката нет.
func (s *PreguntaService) Delete(id uint) error {
	if err := s.respuestaRepo.DeleteByPreguntaID(id); err != nil {
		return fmt.Errorf("failed to delete respuestas for pregunta %d: %w", id, err)
	}
	return s.preguntaRepo.Delete(id)
}
