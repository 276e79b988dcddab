package services

import (
	"testing"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	link := &models.Link{ShortCode: "abc123", OwnerID: "owner"}

	tests := []struct {
		name     string
		identity models.Identity
		link     *models.Link
		want     bool
	}{
		{
			name:     "owner",
			identity: models.AuthenticatedIdentity("owner"),
			link:     link,
			want:     true,
		}, {
			name:     "other user",
			identity: models.AuthenticatedIdentity("intruder"),
			link:     link,
			want:     false,
		}, {
			name:     "anonymous visitor",
			identity: models.AnonymousIdentity("visitor"),
			link:     link,
			want:     false,
		}, {
			name:     "unauthenticated",
			identity: models.UnauthenticatedIdentity(),
			link:     link,
			want:     false,
		}, {
			name:     "nil link",
			identity: models.AuthenticatedIdentity("owner"),
			link:     nil,
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.identity, tt.link))
		})
	}
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(models.AuthenticatedIdentity("user")))
	assert.False(t, CanCreate(models.AnonymousIdentity("visitor")))
	assert.False(t, CanCreate(models.UnauthenticatedIdentity()))
}
