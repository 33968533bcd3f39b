package repository

import (
	"errors"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
)

// ErrNotFound is returned by any repository when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
}
