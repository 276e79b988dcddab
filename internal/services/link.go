package services

import (
	"context"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/repositories"
	"github.com/fsdevblog/tinylinks/internal/shortcode"
	"github.com/pkg/errors"
)

// LinkService сервис коротких ссылок. Правила доступа (policy.go) применяются
// здесь, до обращения к репозиторию.
type LinkService struct {
	linkRepo LinkRepository
}

func NewLinkService(linkRepo LinkRepository) *LinkService {
	return &LinkService{linkRepo: linkRepo}
}

// Create создает запись от имени identity. Код генерируется заново при
// коллизии, владелец - создатель записи.
func (s *LinkService) Create(ctx context.Context, identity models.Identity, target string) (*models.Link, error) {
	if !CanCreate(identity) {
		return nil, errors.Wrap(ErrUnauthenticated, "only authenticated users may create links")
	}
	if target == "" {
		return nil, errors.Wrap(ErrInvalidInput, "target is required")
	}

	// Генератор не гарантирует уникальность, коллизии ловим по ErrDuplicateKey.
	var delta uint = 1
	var deltaMax uint = 10

	for {
		if delta >= deltaMax {
			return nil, errors.Wrap(ErrUnknown, "short code generation loop limit")
		}
		code, genErr := shortcode.Generate(models.ShortCodeLength)
		if genErr != nil {
			return nil, ErrUnknown
		}
		link := &models.Link{
			CreatedAt:  time.Now().UTC(),
			ShortCode:  code,
			Target:     target,
			OwnerID:    identity.UserID,
			VisitCount: 0,
			VisitorLog: make(map[string][]time.Time),
		}
		if createErr := s.linkRepo.Create(ctx, link); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				delta++
				continue
			}
			return nil, ErrUnknown
		}
		return link, nil
	}
}

// Get находит запись по короткому коду.
func (s *LinkService) Get(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.linkRepo.GetByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "code %s not found", code)
		}
		return nil, ErrUnknown
	}
	return link, nil
}

// ListForOwner возвращает все записи владельца в стабильном порядке.
func (s *LinkService) ListForOwner(ctx context.Context, ownerID string) ([]models.Link, error) {
	links, err := s.linkRepo.GetAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, ErrUnknown
	}
	return links, nil
}

// UpdateTarget заменяет целевой URL. Доступно только владельцу.
func (s *LinkService) UpdateTarget(ctx context.Context, identity models.Identity, code, newTarget string) error {
	if newTarget == "" {
		return errors.Wrap(ErrInvalidInput, "target is required")
	}
	if err := s.authorizeMutation(ctx, identity, code); err != nil {
		return err
	}
	if err := s.linkRepo.UpdateTarget(ctx, code, newTarget); err != nil {
		// Запись могла быть удалена конкурентно после проверки доступа.
		if errors.Is(err, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "code %s not found", code)
		}
		return ErrUnknown
	}
	return nil
}

// Delete удаляет запись целиком. Доступно только владельцу.
func (s *LinkService) Delete(ctx context.Context, identity models.Identity, code string) error {
	if err := s.authorizeMutation(ctx, identity, code); err != nil {
		return err
	}
	if err := s.linkRepo.Delete(ctx, code); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "code %s not found", code)
		}
		return ErrUnknown
	}
	return nil
}

// RecordVisit фиксирует посещение кода посетителем visitorKey в момент ts.
// Единственный путь мутации, доступный неаутентифицированным вызовам.
func (s *LinkService) RecordVisit(ctx context.Context, code, visitorKey string, ts time.Time) (*models.Link, error) {
	link, err := s.linkRepo.RecordVisit(ctx, code, visitorKey, ts)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "code %s not found", code)
		}
		return nil, ErrUnknown
	}
	return link, nil
}

// Resolve публичное разрешение короткой ссылки: проверка существования,
// запись посещения и возврат целевого URL одной атомарной операцией
// репозитория. Для только что удаленного кода возвращает ErrRecordNotFound
// и ничего не создает заново.
func (s *LinkService) Resolve(ctx context.Context, code, visitorKey string, ts time.Time) (string, error) {
	link, err := s.RecordVisit(ctx, code, visitorKey, ts)
	if err != nil {
		return "", err
	}
	return link.Target, nil
}

// authorizeMutation общая проверка доступа для UpdateTarget и Delete.
func (s *LinkService) authorizeMutation(ctx context.Context, identity models.Identity, code string) error {
	link, err := s.Get(ctx, code)
	if err != nil {
		return err
	}
	if !identity.IsAuthenticated() {
		return errors.Wrap(ErrUnauthenticated, "authentication required")
	}
	if !CanMutate(identity, link) {
		return errors.Wrapf(ErrForbidden, "user %s does not own code %s", identity.UserID, code)
	}
	return nil
}
