package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/domain"
)

// BadRequest answers 400 with a plain-text diagnostic.
func BadRequest(c *gin.Context, msg string) {
	c.String(http.StatusBadRequest, msg)
}

// Error maps err to a status code. Only domain errors expose their message;
// anything else is reported as a generic server error.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
