package models

import "time"

// User структура модели хранения учетной записи.
// PasswordHash непрозрачный bcrypt-хеш, сравнивается только через
// services.PasswordHasher, никогда напрямую.
type User struct {
	ID           string    `json:"ID" gorm:"primarykey;size:36"`
	CreatedAt    time.Time `json:"createdAt"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:254"`
	PasswordHash string    `json:"passwordHash"`
}
