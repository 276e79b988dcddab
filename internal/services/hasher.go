package services

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher односторонняя проверка секрета. Секрет никогда не
// сравнивается с хранимым значением напрямую.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) bool
}

// BcryptHasher реализация PasswordHasher поверх bcrypt.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.Cost)
	if err != nil {
		return "", errors.Wrap(err, "hash secret")
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
