package sql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserRepo репозиторий учетных записей поверх gorm (sqlite).
// Уникальность email держит уникальный индекс.
type UserRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewUserRepo(db *gorm.DB, logger *logrus.Logger) *UserRepo {
	return &UserRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/user"),
	}
}

func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(convertErrorType(err), repositories.ErrDuplicateKey) {
			return repositories.ErrDuplicateKey
		}
		u.logger.WithError(err).Errorf("failed to create record for email %s", user.Email)
		return repositories.ErrUnknown
	}
	return nil
}

func (u *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if !errors.Is(convertErrorType(err), repositories.ErrNotFound) {
			u.logger.WithError(err).Errorf("failed to get record by id %s", id)
		}
		return nil, fmt.Errorf("failed to get record by id %s: %w", id, convertErrorType(err))
	}
	return &user, nil
}

func (u *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := u.db.WithContext(ctx).Find(&users).Error; err != nil {
		u.logger.WithError(err).Error("failed to get all records")
		return nil, repositories.ErrUnknown
	}
	return users, nil
}
