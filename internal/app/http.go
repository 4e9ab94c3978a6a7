package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog/internal/auth"
	"blog/internal/config"
	"blog/internal/posts"
	"blog/internal/server"
	"blog/internal/session"
)

func setupHTTP(ctx context.Context, cfg *config.Config) (http.Handler, func() error, error) {
	gin.SetMode(gin.ReleaseMode)

	in, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var sessionStore session.Store
	if cfg.Session.Backend == "redis" {
		sessionStore = session.NewRedisStore(in.redis)
	} else {
		sessionStore = session.NewSQLStore(in.db)
	}

	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
	authService := auth.NewService(in.db, sessionStore, ttl)
	postService := posts.NewService(in.db)

	srv, err := server.New(authService, postService, sessionStore, cfg.Server.TemplateDir)
	if err != nil {
		in.close()
		return nil, nil, err
	}

	return srv, in.close, nil
}
