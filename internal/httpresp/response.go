package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope: {success:true, data} plus count for
// listings and message for acknowledgements.
type Response struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func Message(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func List[T any](c *gin.Context, items []T) {
	n := len(items)
	c.JSON(http.StatusOK, Response{Success: true, Count: &n, Data: items})
}
