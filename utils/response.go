package utils

import "github.com/gin-gonic/gin"

// APIResponse is the envelope every endpoint answers with. Error carries the
// service-layer sentinel (snake_case) or a human-readable message; the two
// never appear together.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, APIResponse{Success: true, Data: data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{Success: false, Error: message})
}
