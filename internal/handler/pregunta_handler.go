package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
	"github.com/yourusername/quizbank-api/internal/service"
)

// PreguntaHandler обрабатывает запросы, связанные с вопросами
type PreguntaHandler struct {
	preguntaService *service.PreguntaService
}

// NewPreguntaHandler создает новый обработчик вопросов
func NewPreguntaHandler(preguntaService *service.PreguntaService) *PreguntaHandler {
	return &PreguntaHandler{preguntaService: preguntaService}
}

// PreguntaRequest представляет тело запроса создания/обновления вопроса
type PreguntaRequest struct {
	IDTema     uint              `json:"id_tema"`
	Pregunta   string            `json:"pregunta"`
	Dificultad entity.Dificultad `json:"dificultad"`
}

// List возвращает все вопросы
func (h *PreguntaHandler) List(c *gin.Context) {
	preguntas, err := h.preguntaService.List()
	if err != nil {
		h.handlePreguntaError(c, err)
		return
	}
	c.JSON(http.StatusOK, preguntas)
}

// GetByID возвращает вопрос по ID
func (h *PreguntaHandler) GetByID(c *gin.Context) {
	id := c.MustGet("preguntaID").(uint)

	pregunta, err := h.preguntaService.GetByID(id)
	if err != nil {
		h.handlePreguntaError(c, err)
		return
	}
	c.JSON(http.StatusOK, pregunta)
}

// Create обрабатывает запрос на создание вопроса
func (h *PreguntaHandler) Create(c *gin.Context) {
	var req PreguntaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pregunta := &entity.Pregunta{
		IDTema:     req.IDTema,
		Pregunta:   req.Pregunta,
		Dificultad: req.Dificultad,
	}
	if err := h.preguntaService.Create(pregunta); err != nil {
		h.handlePreguntaError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": pregunta.IDPregunta})
}

// Update обрабатывает запрос на обновление вопроса по ID
func (h *PreguntaHandler) Update(c *gin.Context) {
	id := c.MustGet("preguntaID").(uint)

	var req PreguntaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pregunta := &entity.Pregunta{
		IDPregunta: id,
		IDTema:     req.IDTema,
		Pregunta:   req.Pregunta,
		Dificultad: req.Dificultad,
	}
	if err := h.preguntaService.Update(pregunta); err != nil {
		h.handlePreguntaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pregunta actualizada correctamente"})
}

// Delete обрабатывает запрос на удаление вопроса по ID.
// Вместе с вопросом удаляются его ответы (каскад на уровне приложения).
func (h *PreguntaHandler) Delete(c *gin.Context) {
	id := c.MustGet("preguntaID").(uint)

	if err := h.preguntaService.Delete(id); err != nil {
		h.handlePreguntaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pregunta eliminada correctamente"})
}

// handlePreguntaError преобразует ошибки сервиса в HTTP-ответы
func (h *PreguntaHandler) handlePreguntaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Pregunta no encontrada"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[PreguntaHandler] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
