package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/config"
	dbpkg "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/db"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/logger"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/middleware"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/routes"
)

func main() {

	logger.Init()
	log := logger.Get()
	defer log.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	availCache := cache.New(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, availCache)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
