package main

import (
	"context"
	"log"
	"os"

	api "tradeledger/cmd/tradeledger"
	"tradeledger/conf"
	"tradeledger/internal/seed"
	"tradeledger/pkg/cache"
	"tradeledger/pkg/db"
	"tradeledger/pkg/logger"
)

func main() {

	// 加载配置文件
	err := conf.LoadConfig("conf/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appCfg := conf.AppConfig
	logger.InitLogger(&appCfg.Log, appCfg.AppName)
	defer logger.Sync()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	if dbUser == "" || dbPass == "" || dbHost == "" {
		dbUser = appCfg.Db.Username
		dbPass = appCfg.Db.Password
		dbHost = appCfg.Db.Host
		dbPort = appCfg.Db.Port
		dbName = appCfg.Db.DbName
	}

	// 初始化数据库
	datasource := db.Init(db.NewConfig(dbUser, dbPass, dbHost, dbPort, dbName))

	// 建表并按配置补齐交易市场
	if err := seed.AutoMigrate(datasource); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := seed.EnsureMarkets(context.Background(), datasource, appCfg.Markets); err != nil {
		log.Fatalf("Failed to seed markets: %v", err)
	}

	// 初始化redis缓存，未开启时会话校验直接回源数据库
	if appCfg.Redis.Enabled {
		cache.InitRedis(appCfg.Redis)
	}

	// 创建并启动服务
	srv := api.NewServer(&appCfg)
	srv.RegisterOnShutdown(func() {
		if datasource != nil {
			// 关闭主库链接
			if m, err := datasource.DB(); err == nil {
				_ = m.Close()
			}
		}
		cache.CloseRedis()
	})
	srvRouter := api.InitRouter(datasource)

	srv.Run(srvRouter)
}
