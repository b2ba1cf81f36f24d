package auth

import (
	"strconv"

	"tradeledger/conf"
	"tradeledger/internal/consts"
	"tradeledger/internal/model"
	"tradeledger/internal/service"
	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/response"
	"tradeledger/pkg/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.UserService
}

func NewAuthHandler(service service.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// @Summary		用户注册接口
// @Accept			json
// @Produce		json
// @Param			name		body		string	true	"用户名"
// @Param			password	body		string	true	"密码"
// @Success		200			{object}	response.ApiResponse
// @Router			/api/auth/user [post]
func (handler *AuthHandler) UserRegister() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserRegisterReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", validator.Translate(err)), nil)
			return
		}
		if err := handler.service.UserRegister(ctx, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		用户登陆
// @Description	登陆成功后会话token同时落库和写入cookie
// @Accept			json
// @Produce		json
// @Param			name		body		string	true	"用户名"
// @Param			password	body		string	true	"密码"
// @Success		200			{object}	response.ApiResponse
// @Router			/api/auth/login [post]
func (handler *AuthHandler) UserLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserLoginReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", validator.Translate(err)), nil)
			return
		}

		token, accountType, err := handler.service.UserLogin(ctx, req.Name, req.Password)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}

		sessionCfg := conf.AppConfig.Session
		// 会话cookie只给服务端读，伴随的account_type cookie给前端做界面分支
		// 后者永远不能作为鉴权依据
		ctx.SetCookie(consts.UserCookieName, token.CookieValue(),
			sessionCfg.CookieMaxAge, "/", "", sessionCfg.Secure, true)
		ctx.SetCookie(consts.AccountTypeCookieName, strconv.Itoa(accountType),
			sessionCfg.CookieMaxAge, "/", "", sessionCfg.Secure, false)

		response.JSON(ctx, nil, nil)
	}
}

// @Summary		用户退出登陆
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/auth/logout [get]
func (handler *AuthHandler) UserLogout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookieValue, err := ctx.Cookie(consts.UserCookieName)
		if err != nil {
			response.JSON(ctx, errors.WithCode(ecode.RequireAuthErr, "not logged in"), nil)
			return
		}
		if err := handler.service.UserLogout(ctx, cookieValue); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		// 清掉两个cookie
		ctx.SetCookie(consts.UserCookieName, "", -1, "/", "", false, true)
		ctx.SetCookie(consts.AccountTypeCookieName, "", -1, "/", "", false, false)
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		登陆状态查询
// @Description	cookie有效时返回Login和账户类型，否则返回Logout
// @Produce		json
// @Success		200	{object}	model.AuthStatusRes
// @Router			/api/auth/user [get]
func (handler *AuthHandler) UserAuthStatus() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookieValue, _ := ctx.Cookie(consts.UserCookieName)
		res := handler.service.UserAuthStatus(ctx, cookieValue)
		ctx.JSON(200, res)
	}
}
