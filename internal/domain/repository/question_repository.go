package repository

import (
	"context"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
)

// QuestionRepository persists individual questions within a session.
type QuestionRepository interface {
	// AddToSession bulk-inserts qs into the session, appending after its
	// existing questions. Returns ErrNotFound when the session is missing.
	AddToSession(ctx context.Context, sessionID string, qs []entity.Question) ([]entity.Question, error)
	GetByID(ctx context.Context, id string) (*entity.Question, error)
	Delete(ctx context.Context, id string) error
	UpdateNote(ctx context.Context, id, note string) (*entity.Question, error)
	TogglePin(ctx context.Context, id string) (*entity.Question, error)
}
