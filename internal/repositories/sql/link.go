package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LinkRepo репозиторий ссылок поверх gorm (sqlite).
// Атомарность цикла чтение-изменение-запись обеспечивается транзакциями:
// sqlite сериализует пишущие транзакции сам.
type LinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewLinkRepo(db *gorm.DB, logger *logrus.Logger) *LinkRepo {
	return &LinkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/link"),
	}
}

func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := l.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(convertErrorType(err), repositories.ErrDuplicateKey) {
			return repositories.ErrDuplicateKey
		}
		l.logger.WithError(err).Errorf("failed to create record %+v", *link)
		return repositories.ErrUnknown
	}
	return nil
}

func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	if err := l.db.WithContext(ctx).Where("short_code = ?", code).First(&link).Error; err != nil {
		if !errors.Is(convertErrorType(err), repositories.ErrNotFound) {
			l.logger.WithError(err).Errorf("failed to get record by short code %s", code)
		}
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, convertErrorType(err))
	}
	return &link, nil
}

func (l *LinkRepo) GetAllByOwnerID(ctx context.Context, ownerID string) ([]models.Link, error) {
	var links []models.Link
	err := l.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("short_code").
		Find(&links).Error
	if err != nil {
		l.logger.WithError(err).Errorf("failed to get records by owner id %s", ownerID)
		return nil, repositories.ErrUnknown
	}
	return links, nil
}

func (l *LinkRepo) UpdateTarget(ctx context.Context, code, target string) error {
	res := l.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("short_code = ?", code).
		Update("target", target)
	if res.Error != nil {
		l.logger.WithError(res.Error).Errorf("failed to update record %s", code)
		return repositories.ErrUnknown
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (l *LinkRepo) Delete(ctx context.Context, code string) error {
	res := l.db.WithContext(ctx).Where("short_code = ?", code).Delete(&models.Link{})
	if res.Error != nil {
		l.logger.WithError(res.Error).Errorf("failed to delete record %s", code)
		return repositories.ErrUnknown
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (l *LinkRepo) RecordVisit(ctx context.Context, code, visitorKey string, ts time.Time) (*models.Link, error) {
	var link models.Link
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if getErr := tx.Where("short_code = ?", code).First(&link).Error; getErr != nil {
			return getErr
		}
		link.VisitCount++
		if link.VisitorLog == nil {
			link.VisitorLog = make(map[string][]time.Time)
		}
		link.VisitorLog[visitorKey] = append(link.VisitorLog[visitorKey], ts)
		return tx.Save(&link).Error
	})
	if err != nil {
		if errors.Is(convertErrorType(err), repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to record visit for %s: %w", code, repositories.ErrNotFound)
		}
		l.logger.WithError(err).Errorf("failed to record visit for %s", code)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}
