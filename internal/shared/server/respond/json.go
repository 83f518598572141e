// Package respond centralizes how handlers write JSON bodies, so success and
// error payloads stay uniform across the analysis and history routes.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, body any) {
	JSON(c, http.StatusOK, body)
}
