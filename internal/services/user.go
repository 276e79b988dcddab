package services

import (
	"context"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/repositories"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UserService сервис учетных записей.
type UserService struct {
	userRepo UserRepository
	hasher   PasswordHasher
}

func NewUserService(userRepo UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Register регистрирует новую учетную запись.
// Пустой email или секрет - ErrInvalidInput, занятый email - ErrDuplicateEmail.
// Ошибки валидации завершают операцию сразу, до каких-либо записей в хранилище.
func (u *UserService) Register(ctx context.Context, email, secret string) (*models.User, error) {
	if email == "" || secret == "" {
		return nil, errors.Wrap(ErrInvalidInput, "email and secret are required")
	}

	hash, hashErr := u.hasher.Hash(secret)
	if hashErr != nil {
		return nil, ErrUnknown
	}

	user := &models.User{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, errors.Wrapf(ErrDuplicateEmail, "email %s is taken", email)
		}
		return nil, ErrUnknown
	}
	return user, nil
}

// Verify возвращает учетную запись, у которой совпали и email, и секрет.
// Перебирает все записи до конца: совпавший email с неверным секретом не
// останавливает проверку и не дает ложноотрицательного результата.
// Если подходящей записи нет - ErrRecordNotFound.
func (u *UserService) Verify(ctx context.Context, email, secret string) (*models.User, error) {
	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		return nil, ErrUnknown
	}

	var found *models.User
	for i := range users {
		if users[i].Email == email && u.hasher.Compare(users[i].PasswordHash, secret) {
			found = &users[i]
		}
	}
	if found == nil {
		return nil, errors.Wrapf(ErrRecordNotFound, "no account matches email %s", email)
	}
	return found, nil
}

// ByID находит учетную запись по идентификатору.
func (u *UserService) ByID(ctx context.Context, id string) (*models.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "user %s not found", id)
		}
		return nil, ErrUnknown
	}
	return user, nil
}
