package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/auth"
	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
	cartcontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/cart"
	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Environment)
	logger.Info().Msg("✅ Starting application...")

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.Course{},
		&models.OttService{},
		&models.Slider{},
		&models.Inquiry{},
		&models.ServiceRequest{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	); err != nil {
		logger.Fatal().Err(err).Msg("❌ AutoMigrate failed")
	}

	if err := auth.EnsureSeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("❌ Admin seed failed")
	}

	rdb := initRedis(cfg)
	store := cartstore.New(rdb)

	// Push cart changes to every connected client of the same cart.
	go cartcontroller.StartCartSync(context.Background(), store)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, store, cfg)

	logger.Info().Str("port", cfg.Port).Msg("🚀 Server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase(cfg config.AppConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ DB connection failed")
	}
	return db
}

// initRedis connects the cart store backend and fails fast when it is
// unreachable.
func initRedis(cfg config.AppConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Invalid REDIS_URL")
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Redis connection failed")
	}
	return rdb
}
