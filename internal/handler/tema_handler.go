package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
	"github.com/yourusername/quizbank-api/internal/service"
)

// TemaHandler обрабатывает запросы, связанные с темами
type TemaHandler struct {
	temaService *service.TemaService
}

// NewTemaHandler создает новый обработчик тем
func NewTemaHandler(temaService *service.TemaService) *TemaHandler {
	return &TemaHandler{temaService: temaService}
}

// TemaRequest представляет тело запроса создания/обновления темы
type TemaRequest struct {
	Tema string `json:"tema"`
}

// List возвращает все темы
func (h *TemaHandler) List(c *gin.Context) {
	temas, err := h.temaService.List()
	if err != nil {
		h.handleTemaError(c, err)
		return
	}
	c.JSON(http.StatusOK, temas)
}

// GetByID возвращает тему по ID
func (h *TemaHandler) GetByID(c *gin.Context) {
	id := c.MustGet("temaID").(uint)

	tema, err := h.temaService.GetByID(id)
	if err != nil {
		h.handleTemaError(c, err)
		return
	}
	c.JSON(http.StatusOK, tema)
}

// Create обрабатывает запрос на создание темы
func (h *TemaHandler) Create(c *gin.Context) {
	var req TemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tema, err := h.temaService.Create(req.Tema)
	if err != nil {
		h.handleTemaError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": tema.IDTema})
}

// Update обрабатывает запрос на обновление темы по ID
func (h *TemaHandler) Update(c *gin.Context) {
	id := c.MustGet("temaID").(uint)

	var req TemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.temaService.Update(id, req.Tema); err != nil {
		h.handleTemaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tema actualizado correctamente"})
}

// Delete обрабатывает запрос на удаление темы по ID
func (h *TemaHandler) Delete(c *gin.Context) {
	id := c.MustGet("temaID").(uint)

	if err := h.temaService.Delete(id); err != nil {
		h.handleTemaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tema eliminado correctamente"})
}

// handleTemaError преобразует ошибки сервиса в HTTP-ответы.
// Дубликат имени отдается как 400 (контракт API), а не 409.
// Ошибки хранилища уходят клиенту как 500 с исходным сообщением.
func (h *TemaHandler) handleTemaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Tema no encontrado"})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[TemaHandler] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
