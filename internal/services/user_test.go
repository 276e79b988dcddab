package services

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tinylinks/internal/db"
	"github.com/fsdevblog/tinylinks/internal/repositories/memstore"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceSuite struct {
	suite.Suite
	service *UserService
}

func (s *UserServiceSuite) SetupTest() {
	repo := memstore.NewUserRepo(db.NewMemStorage(), logrus.New())
	// MinCost, чтобы не тормозить тесты на хешировании.
	s.service = NewUserService(repo, &BcryptHasher{Cost: bcrypt.MinCost})
}

func (s *UserServiceSuite) TestRegister() {
	email := gofakeit.Email()

	user, err := s.service.Register(s.T().Context(), email, "secret")
	s.Require().NoError(err)
	s.Equal(email, user.Email)
	s.NotEmpty(user.ID)
	s.NotEqual("secret", user.PasswordHash)
}

func (s *UserServiceSuite) TestRegister_EmptyInput() {
	_, err := s.service.Register(s.T().Context(), "", "secret")
	s.Require().ErrorIs(err, ErrInvalidInput)

	_, err = s.service.Register(s.T().Context(), gofakeit.Email(), "")
	s.Require().ErrorIs(err, ErrInvalidInput)
}

func (s *UserServiceSuite) TestRegister_DuplicateEmail() {
	email := gofakeit.Email()
	_, err := s.service.Register(s.T().Context(), email, "secret")
	s.Require().NoError(err)

	// Повтор с другим секретом все равно конфликт.
	_, err = s.service.Register(s.T().Context(), email, "another")
	s.Require().ErrorIs(err, ErrDuplicateEmail)
}

func (s *UserServiceSuite) TestVerify() {
	email := gofakeit.Email()
	created, err := s.service.Register(s.T().Context(), email, "secret")
	s.Require().NoError(err)

	user, err := s.service.Verify(s.T().Context(), email, "secret")
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)
}

func (s *UserServiceSuite) TestVerify_WrongSecret() {
	email := gofakeit.Email()
	_, err := s.service.Register(s.T().Context(), email, "secret")
	s.Require().NoError(err)

	_, err = s.service.Verify(s.T().Context(), email, "wrong")
	s.Require().ErrorIs(err, ErrRecordNotFound)
}

func (s *UserServiceSuite) TestVerify_UnknownEmail() {
	_, err := s.service.Verify(s.T().Context(), gofakeit.Email(), "secret")
	s.Require().ErrorIs(err, ErrRecordNotFound)
}

func (s *UserServiceSuite) TestByID() {
	created, err := s.service.Register(s.T().Context(), gofakeit.Email(), "secret")
	s.Require().NoError(err)

	user, err := s.service.ByID(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Equal(created.Email, user.Email)

	_, err = s.service.ByID(s.T().Context(), "missing")
	s.Require().ErrorIs(err, ErrRecordNotFound)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}
