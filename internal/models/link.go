package models

import (
	"sort"
	"time"
)

// ShortCodeLength длина короткого кода ссылки.
const ShortCodeLength = 6

// Link структура модели хранения короткой ссылки.
//
// VisitorLog хранит журнал посещений: ключ - идентичность посетителя
// (ID пользователя либо анонимный UUID), значение - упорядоченный список
// моментов посещения. Множество уникальных посетителей не хранится отдельно,
// а выводится из ключей журнала (см. UniqueVisitors).
type Link struct {
	ID         uint                   `json:"ID" gorm:"primarykey"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
	ShortCode  string                 `json:"shortCode" gorm:"uniqueIndex;size:6"`
	Target     string                 `json:"target" gorm:"size:2048"`
	OwnerID    string                 `json:"ownerID" gorm:"index;size:36"`
	VisitCount int                    `json:"visitCount"`
	VisitorLog map[string][]time.Time `json:"visitorLog" gorm:"serializer:json"`
}

// UniqueVisitors возвращает отсортированный список уникальных посетителей.
func (l *Link) UniqueVisitors() []string {
	visitors := make([]string, 0, len(l.VisitorLog))
	for v := range l.VisitorLog {
		visitors = append(visitors, v)
	}
	sort.Strings(visitors)
	return visitors
}

// UniqueVisitorCount количество уникальных посетителей.
func (l *Link) UniqueVisitorCount() int {
	return len(l.VisitorLog)
}
