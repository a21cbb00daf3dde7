package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"calculation-service/internal/auth"
	"calculation-service/internal/calculator"
	"calculation-service/internal/config"
	"calculation-service/internal/storage"
	"calculation-service/internal/users"
)

func main() {
	cfg := config.Load()

	db, err := storage.Open(cfg.DatabaseDSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open storage")
	}

	codec := auth.NewTokenCodec([]byte(cfg.TokenSecret), cfg.TokenTTL)
	directory := users.NewDirectory(db, codec)
	store := calculator.NewRecordStore(db)

	router := setupRouter(directory, store, codec)

	logrus.WithField("addr", cfg.ListenAddr).Info("starting calculation service")
	if err := router.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func setupRouter(directory *users.Directory, store *calculator.RecordStore, codec *auth.TokenCodec) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	userHandler := users.NewHandler(directory)
	calcHandler := calculator.NewHandler(store)

	api := router.Group("/api/v1")
	api.POST("/register", userHandler.Register)
	api.POST("/login", userHandler.Login)

	authed := api.Group("", auth.Middleware(codec))
	authed.GET("/me", userHandler.Me)
	authed.DELETE("/me", userHandler.DeleteMe)
	authed.POST("/calculate", calcHandler.Create)
	authed.GET("/calculations", calcHandler.List)
	authed.GET("/calculations/:id", calcHandler.Get)

	return router
}
