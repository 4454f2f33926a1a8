// Command gallery runs the media-gallery backend API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/webimagedrive/gallery/internal/auth"
	"github.com/webimagedrive/gallery/internal/auth/password"
	"github.com/webimagedrive/gallery/internal/auth/revocation"
	"github.com/webimagedrive/gallery/internal/auth/token"
	"github.com/webimagedrive/gallery/internal/config"
	"github.com/webimagedrive/gallery/internal/logger"
	"github.com/webimagedrive/gallery/internal/server"
	"github.com/webimagedrive/gallery/internal/server/handlers"
	"github.com/webimagedrive/gallery/internal/user"
)

func main() {
	configFile := flag.String("config", "", "path to config.yml (optional)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("configuration error", logger.Fields("error", err.Error()))
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()

	users, err := user.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal("user store unavailable", logger.Fields("error", err.Error()))
	}

	codec, err := token.NewCodec(cfg.Token)
	if err != nil {
		log.Fatal("token codec error", logger.Fields("error", err.Error()))
	}

	tokens := newRevocationStore(cfg, log)
	hasher := password.NewHasher(cfg.Password)
	gateway := auth.NewGateway(users, hasher, codec, tokens, log)

	srv := server.New(cfg.Server, log)
	handlers.RegisterRoutes(srv.Engine(), gateway, users)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("server error", logger.Fields("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", logger.Fields("error", err.Error()))
	}
}

// newRevocationStore picks Redis when configured, otherwise the in-process
// store. Both honor the same liveness contract; Redis survives restarts.
func newRevocationStore(cfg *config.Config, log *logger.Logger) revocation.Store {
	if cfg.Redis.Addr == "" {
		log.Info("using in-memory revocation store")
		return revocation.NewMemoryStore()
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.WithFields(map[string]interface{}{"addr": cfg.Redis.Addr}).Info("using redis revocation store")
	return revocation.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
}
