package public

import (
	handlershared "github.com/storefront-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

const contextKeyUserID = "user_id"

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, contextKeyUserID, "error.user_id_invalid", "error.user_id_type_invalid")
}

// optionalUserID 未登录时返回 0
func optionalUserID(c *gin.Context) uint {
	uid, _ := handlershared.LookupContextUint(c, contextKeyUserID)
	return uid
}
