package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kubaxi/service-funnel/internal/domain"
)

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Error maps an application error to its HTTP status. Validation errors keep
// their literal user-facing message; anything unclassified becomes a 500
// without leaking internals.
func Error(c *gin.Context, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case domain.KindValidation:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": appErr.Message})
		case domain.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": appErr.Message})
		case domain.KindInvalidState:
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": appErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
}
