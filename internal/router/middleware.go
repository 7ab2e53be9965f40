package router

import (
	"net/url"

	"github.com/dojo-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// URLMiddleware makes the base URL of the API available to handlers
// for building links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url.String())
		c.Next()
	}
}
