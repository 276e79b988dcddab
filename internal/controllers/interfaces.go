package controllers

import (
	"context"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
)

// LinkStore операции над короткими ссылками, нужные контроллерам.
type LinkStore interface {
	Create(ctx context.Context, identity models.Identity, target string) (*models.Link, error)
	Get(ctx context.Context, code string) (*models.Link, error)
	ListForOwner(ctx context.Context, ownerID string) ([]models.Link, error)
	UpdateTarget(ctx context.Context, identity models.Identity, code, newTarget string) error
	Delete(ctx context.Context, identity models.Identity, code string) error
	Resolve(ctx context.Context, code, visitorKey string, ts time.Time) (string, error)
}

// UserStore операции над учетными записями, нужные контроллерам.
type UserStore interface {
	Register(ctx context.Context, email, secret string) (*models.User, error)
	Verify(ctx context.Context, email, secret string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
}
