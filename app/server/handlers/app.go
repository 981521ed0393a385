package handlers

import (
	"context"

	"kokoro-diary/app/server/jwt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentGenerator is the outbound AI call the comment handler depends on.
type CommentGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type App struct {
	l   *zap.Logger
	db  *gorm.DB
	rdb *redis.Client
	jwt *jwt.JWT
	ai  CommentGenerator
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, ai CommentGenerator) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,
		ai:  ai,
	}
}
