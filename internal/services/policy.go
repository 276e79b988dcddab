package services

import "github.com/fsdevblog/tinylinks/internal/models"

// CanMutate разрешает изменение и удаление записи только аутентифицированному
// владельцу. Чистая функция без состояния.
func CanMutate(identity models.Identity, link *models.Link) bool {
	if link == nil {
		return false
	}
	return identity.IsAuthenticated() && identity.UserID == link.OwnerID
}

// CanCreate создавать ссылки могут только аутентифицированные пользователи.
func CanCreate(identity models.Identity) bool {
	return identity.IsAuthenticated()
}
