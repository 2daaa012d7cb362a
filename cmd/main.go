package main

import (
	"context"
	"github.com/go-redis/redis/v9"
	"io"
	"net/http"
	"os"
	"time"
	"wheelmarket/internal/configuration"
	"wheelmarket/internal/database"
	"wheelmarket/internal/logger"
	"wheelmarket/internal/server"
)

func main() {
	if err := runApp(); err != nil {
		os.Exit(1)
	}
}

func runApp() error {
	appContext := context.Background()
	logOutput := io.Writer(os.Stdout)
	appLogger := logger.NewLogger(false, false, true, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration from config.toml:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("wheelmarket_backend.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogDebug, config.LogInfo, config.LogError, logOutput)

	appLogger.Info("Connecting to DB at", config.DatabaseURI)
	dbConn, err := database.ConnectDB(appContext, config.DatabaseURI)
	if err != nil {
		appLogger.Error("Error connecting to DB:", err)
		return err
	}
	defer func() {
		if err := dbConn.Disconnect(appContext); err != nil {
			appLogger.Error("Error disconnecting from DB:", err)
		}
	}()

	var redisClient *redis.Client
	if config.RedisAddress != "" {
		appLogger.Info("Using Redis stats cache at", config.RedisAddress)
		redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddress})
	}

	var identity server.IdentityResolver = server.GuestResolver{}
	if config.AuthSecretKey != nil {
		identity = server.TokenResolver{Key: config.AuthSecretKey}
	}

	srv := server.Server{
		DB:            database.Database{Database: dbConn.Database(database.Name)},
		Redis:         redisClient,
		StatsCacheTTL: config.StatsCacheTTL,
		Identity:      identity,
		Logger:        appLogger,
	}

	httpSrv := &http.Server{
		Handler:      srv.Router(),
		Addr:         config.ServerAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	appLogger.Info("Serving on", httpSrv.Addr)
	return httpSrv.ListenAndServe()
}
