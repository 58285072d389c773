package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/syafiqfadli/food-ordering-app-server/configs"
	"github.com/syafiqfadli/food-ordering-app-server/middlewares"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/logger"
	"github.com/syafiqfadli/food-ordering-app-server/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Init()
	defer logger.Log.Sync()

	// DB
	configs.ConnectionDB(cfg)
	defer configs.DisconnectDB()

	if err := configs.SetupDatabase(); err != nil {
		logger.Log.Fatal("setup indexes failed", zap.Error(err))
	}

	// Catalog cache is optional; the listing falls back to the store.
	if err := configs.ConnectRedis(cfg); err != nil {
		logger.Log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Log.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
