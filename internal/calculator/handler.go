package calculator

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"calculation-service/internal/auth"
)

type Handler struct {
	store *RecordStore
}

func NewHandler(store *RecordStore) *Handler {
	return &Handler{store: store}
}

// Pointers so that an operand of 0 still passes the required binding.
type calculateRequest struct {
	A    *float64 `json:"a" binding:"required"`
	B    *float64 `json:"b" binding:"required"`
	Type string   `json:"type" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	op, err := ParseOperation(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calc, err := h.store.Create(c.Request.Context(), *req.A, *req.B, op, userID)
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrUnsupportedOperation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("failed to save calculation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, calc)
}

func (h *Handler) List(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	calcs, err := h.store.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("failed to list calculations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, calcs)
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "calculation not found"})
		return
	}

	calc, err := h.store.Get(c.Request.Context(), id, userID)
	if err != nil {
		logrus.WithError(err).Error("failed to load calculation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if calc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "calculation not found"})
		return
	}

	c.JSON(http.StatusOK, calc)
}
