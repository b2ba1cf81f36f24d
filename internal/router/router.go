package router

import (
	"tradeledger/internal/handler/auth"
	"tradeledger/internal/handler/order"
	"tradeledger/internal/handler/ping"
	"tradeledger/internal/handler/portfolio"
	"tradeledger/internal/handler/risk"
	"tradeledger/internal/middleware"
	"tradeledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	authHandler      *auth.AuthHandler
	portfolioHandler *portfolio.PortfolioHandler
	orderHandler     *order.OrderHandler
	riskHandler      *risk.RiskHandler
	sessionService   service.SessionService
}

func NewApiRouter(ah *auth.AuthHandler, ph *portfolio.PortfolioHandler, oh *order.OrderHandler, rh *risk.RiskHandler, ss service.SessionService) *ApiRouter {
	return &ApiRouter{authHandler: ah, portfolioHandler: ph, orderHandler: oh, riskHandler: rh, sessionService: ss}
}

func (api *ApiRouter) Load(g *gin.Engine) {

	g.Use(middleware.RequestId(), middleware.Logger, middleware.NoCache(), middleware.Options())

	g.GET("/ping", ping.Ping())

	base := g.Group("/api")

	a := base.Group("/auth", middleware.AntiDuplicateMiddleware())
	{
		a.POST("/login", api.authHandler.UserLogin())
		a.POST("/user", api.authHandler.UserRegister())
		// 未登录时返回Logout，前端据此渲染登录页
		a.GET("/user", api.authHandler.UserAuthStatus())
		a.GET("/logout", api.authHandler.UserLogout())
	}

	p := base.Group("/portfolio", middleware.AuthSession(api.sessionService))
	{
		p.POST("", api.portfolioHandler.PortfolioAdd())
		p.GET("", api.portfolioHandler.PortfolioGetList())
		p.DELETE("", api.portfolioHandler.PortfolioRemove())
	}

	o := base.Group("/order", middleware.AuthSession(api.sessionService))
	{
		o.POST("", api.orderHandler.OrderPlace())
		o.GET("", api.orderHandler.OrderGetList())
	}

	r := base.Group("/risk", middleware.AuthSession(api.sessionService))
	{
		r.POST("", api.riskHandler.RiskUpdate())
		r.GET("", api.riskHandler.RiskGetStatus())
	}
}
