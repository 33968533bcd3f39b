package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
	"github.com/mockmate/mockmate-api/internal/domain/repository"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO sessions (user_id, role, experience, topics_to_focus, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, s.UserID, s.Role, s.Experience, s.TopicsToFocus, s.Description)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return err
	}

	for i := range s.Questions {
		q := &s.Questions[i]
		q.SessionID = s.ID
		q.Position = i
		row := tx.QueryRow(ctx, `
			INSERT INTO questions (session_id, position, question, answer, note)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`, q.SessionID, q.Position, q.Question, q.Answer, q.Note)
		if err := row.Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	if uuid.Validate(id) != nil {
		return nil, repository.ErrNotFound
	}
	s := &entity.Session{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, role, experience, topics_to_focus, description, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`, id)
	if err := row.Scan(&s.ID, &s.UserID, &s.Role, &s.Experience, &s.TopicsToFocus,
		&s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	qs, err := r.questionsFor(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Questions = qs[s.ID]
	if s.Questions == nil {
		s.Questions = []entity.Question{}
	}
	return s, nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Session, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, role, experience, topics_to_focus, description, created_at, updated_at
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []entity.Session{}
	ids := []string{}
	for rows.Next() {
		var s entity.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Role, &s.Experience, &s.TopicsToFocus,
			&s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID, err := r.questionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Questions = byID[sessions[i].ID]
		if sessions[i].Questions == nil {
			sessions[i].Questions = []entity.Question{}
		}
	}
	return sessions, nil
}

// Delete removes questions before the session row so a failure mid-way can
// only strand the parent, never leave it pointing at deleted children.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return repository.ErrNotFound
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE session_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *SessionRepository) questionsFor(ctx context.Context, sessionIDs []string) (map[string][]entity.Question, error) {
	out := make(map[string][]entity.Question, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, session_id, position, question, answer, note, is_pinned, created_at, updated_at
		FROM questions
		WHERE session_id = ANY($1)
		ORDER BY session_id, position
	`, sessionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.SessionID, &q.Position, &q.Question, &q.Answer,
			&q.Note, &q.IsPinned, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out[q.SessionID] = append(out[q.SessionID], q)
	}
	return out, rows.Err()
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
