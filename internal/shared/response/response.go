package response

import (
	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error writes a failure envelope. The code is exposed as a response header
// so clients can branch without parsing the message.
func Error(c *gin.Context, status int, code string, message string) {
	if code != "" {
		c.Header("X-Error-Code", code)
	}
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code string, message string) {
	Error(c, status, code, message)
	c.Abort()
}
