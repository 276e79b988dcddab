package smocks

import (
	"context"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/stretchr/testify/mock"
)

type UserMock struct {
	mock.Mock
}

func (u *UserMock) Register(ctx context.Context, email, secret string) (*models.User, error) {
	args := u.Called(ctx, email, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) Verify(ctx context.Context, email, secret string) (*models.User, error) {
	args := u.Called(ctx, email, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) ByID(ctx context.Context, id string) (*models.User, error) {
	args := u.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}
