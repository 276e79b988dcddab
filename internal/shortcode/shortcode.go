package shortcode

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// Alphabet 62 символа [A-Za-z0-9]. Выборка равномерная, с повторениями.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate генерирует случайный код заданной длины.
// Уникальность не гарантируется - вызывающая сторона обязана проверять
// коллизии в своем пространстве ключей и генерировать код повторно.
func Generate(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			return "", errors.Wrap(err, "generate short code")
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}
