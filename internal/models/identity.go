package models

// IdentityKind тип идентичности вызывающего.
type IdentityKind string

// IdentityUnauthenticated идентичность не установлена.
// IdentityAuthenticated аутентифицированный пользователь.
// IdentityAnonymous анонимный отслеживаемый посетитель.
const (
	IdentityUnauthenticated IdentityKind = "unauthenticated"
	IdentityAuthenticated   IdentityKind = "authenticated"
	IdentityAnonymous       IdentityKind = "anonymous"
)

// Identity идентичность вызывающего в рамках одного запроса.
// Состояния взаимоисключающие: заполнено либо UserID, либо VisitorID.
type Identity struct {
	Kind      IdentityKind
	UserID    string
	VisitorID string
}

func AuthenticatedIdentity(userID string) Identity {
	return Identity{Kind: IdentityAuthenticated, UserID: userID}
}

func AnonymousIdentity(visitorID string) Identity {
	return Identity{Kind: IdentityAnonymous, VisitorID: visitorID}
}

func UnauthenticatedIdentity() Identity {
	return Identity{Kind: IdentityUnauthenticated}
}

func (i Identity) IsAuthenticated() bool {
	return i.Kind == IdentityAuthenticated
}

// VisitorKey ключ идентичности в журнале посещений. Для неустановленной
// идентичности возвращает пустую строку.
func (i Identity) VisitorKey() string {
	switch i.Kind {
	case IdentityAuthenticated:
		return i.UserID
	case IdentityAnonymous:
		return i.VisitorID
	default:
		return ""
	}
}
