package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {
	_ = godotenv.Load()

	logging.Init()
	log := logging.L()
	defer log.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := cache.NewClient(cfg)
	points := cache.NewPointsCache(redisClient)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/isServerAlive", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is alive!"})
	})

	routes.RegisterRoutes(r, db, cfg, points)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
