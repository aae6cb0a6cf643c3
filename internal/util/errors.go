package util

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

// SafeErrorResponse logs the underlying error and sends a generic JSON error
// body. The error detail is echoed to the client only outside release mode,
// so internals like SQL text never leak from a production API.
func SafeErrorResponse(c *gin.Context, statusCode int, userMessage string, err error) {
	if err != nil {
		log.Printf("Error handling %s: %v", c.Request.URL.Path, err)
	}

	response := gin.H{
		"success": false,
		"message": userMessage,
	}

	if os.Getenv("GIN_MODE") != "release" && err != nil {
		response["error"] = err.Error()
	}

	c.JSON(statusCode, response)
}
