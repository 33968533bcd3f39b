package repository

import (
	"context"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
)

// SessionRepository persists interview sessions together with their questions.
type SessionRepository interface {
	// Create inserts the session and its initial questions in one transaction.
	// Generated ids, positions and timestamps are written back into s.
	Create(ctx context.Context, s *entity.Session) error
	// GetByID loads a session with its questions in stored order.
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	// ListByUser returns the user's sessions, most recently created first,
	// each populated with its questions.
	ListByUser(ctx context.Context, userID string) ([]entity.Session, error)
	// Delete removes the session's questions and then the session row,
	// child-first inside one transaction.
	Delete(ctx context.Context, id string) error
}
