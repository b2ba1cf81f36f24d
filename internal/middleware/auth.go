package middleware

import (
	"tradeledger/internal/consts"
	"tradeledger/internal/service"
	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthSession 鉴权，校验会话cookie是否有效
// 通过后把账户id和类型写入context，后续handler直接取用
func AuthSession(ss service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(consts.UserCookieName)
		if err != nil {
			response.JSON(c, errors.WithCode(ecode.RequireAuthErr, "not logged in"), nil)
			c.Abort()
			return
		}

		// 校验失败按错误码回应：会话无效401，存储故障500且不透出底层错误文本
		identity, err := ss.SessionValidate(c, cookieValue)
		if err != nil {
			response.JSON(c, err, nil)
			c.Abort()
			return
		}

		c.Set(consts.UserID, identity.AccountId)
		c.Set(consts.AccountType, identity.AccountType)
		c.Next()
	}
}
