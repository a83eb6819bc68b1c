package public

import (
	handlershared "github.com/storefront-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondKeyedError(c *gin.Context, code int, err error, fallbackKey string) {
	handlershared.RespondKeyedError(c, code, err, fallbackKey)
}
