package api

import (
	"log"

	"tradeledger/internal/dao/query"
	"tradeledger/internal/handler/auth"
	"tradeledger/internal/handler/order"
	"tradeledger/internal/handler/portfolio"
	"tradeledger/internal/handler/risk"
	"tradeledger/internal/router"
	"tradeledger/internal/service"
	"tradeledger/pkg/cache"
	"tradeledger/pkg/exchange"
	"tradeledger/pkg/session"

	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB) Router {
	ad := query.NewAccountDao(db)
	sd := query.NewSessionDao(db)
	pd := query.NewPairDao(db)
	fd := query.NewPortfolioDao(db)
	od := query.NewOrderDao(db)

	// 会话token发生器，进程级共享一个ChaCha8流
	ts, err := session.NewTokenSource()
	if err != nil {
		log.Fatalf("Failed to init session token source: %v", err)
	}

	ss := service.NewSessionService(sd, ad, ts, cache.GetRedisClient())
	us := service.NewUserService(ad, ss)
	ps := service.NewPortfolioService(fd, pd)
	os := service.NewOrderService(od, pd, exchange.NewSnowflakeOrderIDGenerator(1))
	rs := service.NewRiskService(query.NewRiskDao(db), fd)

	authHandler := auth.NewAuthHandler(us)
	portfolioHandler := portfolio.NewPortfolioHandler(ps)
	orderHandler := order.NewOrderHandler(os)
	riskHandler := risk.NewRiskHandler(rs)

	return router.NewApiRouter(authHandler, portfolioHandler, orderHandler, riskHandler, ss)
}
