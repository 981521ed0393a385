package main

import (
	"fmt"
	"log"

	"kokoro-diary/app/server/gemini"
	"kokoro-diary/app/server/handlers"
	"kokoro-diary/app/server/inits"
	"kokoro-diary/app/server/jwt"
	"kokoro-diary/app/server/middlewares"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	l.Debug("logger initialized")

	db, err := inits.DB(cfg.System.DBConnectionString, !cfg.System.IsProd)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	handlerApp := handlers.NewApp(l, db, rdb, j, gemini.New(cfg.AI.GeminiAPIKey))

	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Open routes
	e.POST("/api/register", handlerApp.Register)
	e.POST("/api/login", handlerApp.Login)

	// Routes behind the bearer-credential check
	authed := e.Group("/api", middlewares.Auth(j, l))
	authed.GET("/diaries", handlerApp.DiaryList)
	authed.GET("/diaries/:id", handlerApp.DiaryGet)
	authed.POST("/diaries", handlerApp.DiaryCreate)
	authed.PUT("/diaries/:id", handlerApp.DiaryUpdate)
	authed.DELETE("/diaries/:id", handlerApp.DiaryDelete)
	authed.POST("/comment", handlerApp.Comment)

	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
