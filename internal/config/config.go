package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// Redis
	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	// JWT
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// Network
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// Workers
	WorkerCount int `envconfig:"WORKER_COUNT" default:"1"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
