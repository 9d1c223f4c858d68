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

// RespuestaHandler обрабатывает запросы, связанные с ответами
type RespuestaHandler struct {
	respuestaService *service.RespuestaService
}

// NewRespuestaHandler создает новый обработчик ответов
func NewRespuestaHandler(respuestaService *service.RespuestaService) *RespuestaHandler {
	return &RespuestaHandler{respuestaService: respuestaService}
}

// RespuestaRequest представляет тело запроса создания/обновления ответа
type RespuestaRequest struct {
	IDPregunta uint   `json:"id_pregunta"`
	Respuesta  string `json:"respuesta"`
	EsCorrecta bool   `json:"es_correcta"`
}

// List возвращает все ответы
func (h *RespuestaHandler) List(c *gin.Context) {
	respuestas, err := h.respuestaService.List()
	if err != nil {
		h.handleRespuestaError(c, err)
		return
	}
	c.JSON(http.StatusOK, respuestas)
}

// GetByID возвращает ответ по ID
func (h *RespuestaHandler) GetByID(c *gin.Context) {
	id := c.MustGet("respuestaID").(uint)

	respuesta, err := h.respuestaService.GetByID(id)
	if err != nil {
		h.handleRespuestaError(c, err)
		return
	}
	c.JSON(http.StatusOK, respuesta)
}

// Create обрабатывает запрос на создание ответа
func (h *RespuestaHandler) Create(c *gin.Context) {
	var req RespuestaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respuesta := &entity.Respuesta{
		IDPregunta: req.IDPregunta,
		Respuesta:  req.Respuesta,
		EsCorrecta: req.EsCorrecta,
	}
	if err := h.respuestaService.Create(respuesta); err != nil {
		h.handleRespuestaError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": respuesta.IDRespuesta})
}

// Update обрабатывает запрос на обновление ответа по ID
func (h *RespuestaHandler) Update(c *gin.Context) {
	id := c.MustGet("respuestaID").(uint)

	var req RespuestaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respuesta := &entity.Respuesta{
		IDRespuesta: id,
		IDPregunta:  req.IDPregunta,
		Respuesta:   req.Respuesta,
		EsCorrecta:  req.EsCorrecta,
	}
	if err := h.respuestaService.Update(respuesta); err != nil {
		h.handleRespuestaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Respuesta actualizada correctamente"})
}

// Delete обрабатывает запрос на удаление ответа по ID
func (h *RespuestaHandler) Delete(c *gin.Context) {
	id := c.MustGet("respuestaID").(uint)

	if err := h.respuestaService.Delete(id); err != nil {
		h.handleRespuestaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Respuesta eliminada correctamente"})
}

// handleRespuestaError преобразует ошибки сервиса в HTTP-ответы
func (h *RespuestaHandler) handleRespuestaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Respuesta no encontrada"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[RespuestaHandler] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
