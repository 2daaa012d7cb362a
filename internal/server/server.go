package server

import (
	"github.com/go-redis/redis/v9"
	"time"
	"wheelmarket/internal/database"
)

type Server struct {
	DB            database.Database
	Redis         *redis.Client
	StatsCacheTTL time.Duration
	Identity      IdentityResolver
	Logger        logger
}

type logger interface {
	Debug(v ...any)
	Info(v ...any)
	Error(v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}
