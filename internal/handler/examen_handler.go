package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	"github.com/yourusername/quizbank-api/internal/handler/dto"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
	"github.com/yourusername/quizbank-api/internal/service"
)

// ExamenHandler обрабатывает запросы на сборку экзамена
type ExamenHandler struct {
	examenService *service.ExamenService
}

// NewExamenHandler создает новый обработчик экзаменов
func NewExamenHandler(examenService *service.ExamenService) *ExamenHandler {
	return &ExamenHandler{examenService: examenService}
}

// ExamenRequest представляет параметры сборки экзамена
type ExamenRequest struct {
	NombresTemas []string          `json:"nombresTemas"`
	Dificultad   entity.Dificultad `json:"dificultad"`
	Limite       int               `json:"limite"`
}

// Armar собирает экзамен по темам, сложности и лимиту вопросов
func (h *ExamenHandler) Armar(c *gin.Context) {
	var req ExamenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	examen, err := h.examenService.Armar(req.NombresTemas, req.Dificultad, req.Limite)
	if err != nil {
		h.handleExamenError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExamenResponse(examen))
}

// handleExamenError преобразует ошибки сервиса в HTTP-ответы
func (h *ExamenHandler) handleExamenError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[ExamenHandler] internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
