package utils

import (
	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// RespondError writes the API error body, a bare {"message": ...} object.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, MessageResponse{Message: err.Error()})
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}
