package service

import (
	"github.com/yourusername/quizbank-api/internal/domain/entity"
	"github.com/yourusername/quizbank-api/internal/domain/repository"
)

// RespuestaService предоставляет методы для работы с ответами
type RespuestaService struct {
	respuestaRepo repository.RespuestaRepository
}

// NewRespuestaService создает новый сервис ответов
func NewRespuestaService(respuestaRepo repository.RespuestaRepository) *RespuestaService {
	return &RespuestaService{respuestaRepo: respuestaRepo}
}

// List возвращает все ответы
func (s *RespuestaService) List() ([]entity.Respuesta, error) {
	return s.respuestaRepo.List()
}

// GetByID возвращает ответ по ID
func (s *RespuestaService) GetByID(id uint) (*entity.Respuesta, error) {
	return s.respuestaRepo.GetByID(id)
}

// Create создает новый ответ
func (s *RespuestaService) Create(respuesta *entity.Respuesta) error {
	return s.respuestaRepo.Create(respuesta)
}

// Update обновляет ответ по ID
func (s *RespuestaService) Update(respuesta *entity.Respuesta) error {
	return s.respuestaRepo.Update(respuesta)
}

// Delete удаляет ответ по ID
func (s *RespuestaService) Delete(id uint) error {
	return s.respuestaRepo.Delete(id)
}
