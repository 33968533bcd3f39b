package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
	repo "github.com/mockmate/mockmate-api/internal/domain/repository"
	"github.com/mockmate/mockmate-api/pkg/helpers"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
	created *entity.User
	updated *entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = "user-new"
	f.created = u
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.updated = u
	return nil
}

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, testJWT(), nil, nil, nil, "", nil, false)

	u, pair, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user-new", u.ID)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "secret123"))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := testJWT().ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-new", claims.UserID)
	assert.NotEmpty(t, claims.SessionID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "user-1", Email: "alice@example.com"})
	svc := NewUserService(users, testJWT(), nil, nil, nil, "", nil, false)

	_, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, users.created)
}

func TestLogin(t *testing.T) {
	hash, err := helpers.HashPassword("secret123")
	require.NoError(t, err)
	users := newFakeUserRepo(&entity.User{ID: "user-1", Email: "alice@example.com", Password: hash})
	svc := NewUserService(users, testJWT(), nil, nil, nil, "", nil, false)

	u, pair, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.AccessTokenExpiry.Before(pair.RefreshTokenExpiry))

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "user-1", Email: "alice@example.com"})
	svc := NewUserService(users, testJWT(), nil, nil, nil, "", nil, false)

	pair, err := svc.IssueTokens(context.Background(), users.byID["user-1"])
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	_, err = svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Refresh(context.Background(), pair.AccessToken) // wrong signing secret
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"})
	svc := NewUserService(users, testJWT(), nil, nil, nil, "", nil, false)

	u, err := svc.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)

	_, err = svc.GetProfile("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUploadAvatarWithoutStorage(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "user-1", Email: "alice@example.com"})
	svc := NewUserService(users, testJWT(), nil, nil, nil, "", nil, false)

	_, err := svc.UploadAvatar(context.Background(), "user-1", nil, "me.png", "image/png")
	assert.Error(t, err)
}
