package smocks

import (
	"context"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/stretchr/testify/mock"
)

type LinkMock struct {
	mock.Mock
}

func (l *LinkMock) Create(ctx context.Context, identity models.Identity, target string) (*models.Link, error) {
	args := l.Called(ctx, identity, target)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) Get(ctx context.Context, code string) (*models.Link, error) {
	args := l.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) ListForOwner(ctx context.Context, ownerID string) ([]models.Link, error) {
	args := l.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) UpdateTarget(ctx context.Context, identity models.Identity, code, newTarget string) error {
	args := l.Called(ctx, identity, code, newTarget)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) Delete(ctx context.Context, identity models.Identity, code string) error {
	args := l.Called(ctx, identity, code)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) Resolve(ctx context.Context, code, visitorKey string, ts time.Time) (string, error) {
	args := l.Called(ctx, code, visitorKey, ts)
	return args.String(0), args.Error(1) //nolint:wrapcheck,errcheck
}
