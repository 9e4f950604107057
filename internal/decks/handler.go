package decks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deckflow-backend/internal/shared/metrics"
	"deckflow-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches deck routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/decks", h.upload)
	rg.GET("/decks", h.dashboard)
	rg.GET("/decks/:id", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	deck, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", "only .pdf and .pptx files are accepted", nil)
		case errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB limit", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to accept upload", nil)
		}
		return
	}

	metrics.IncDecksUploaded()
	respond.JSON(c, http.StatusCreated, toResponse(deck))
}

func (h *Handler) dashboard(c *gin.Context) {
	resp, err := h.Svc.Dashboard(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list decks", nil)
		return
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid deck id", nil)
		return
	}

	deck, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "deck not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch deck", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(deck))
}
