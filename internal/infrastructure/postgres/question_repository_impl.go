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

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// AddToSession appends qs after the session's existing questions. The
// position base and the inserts share one transaction, and the session's
// updated_at is touched so listings reflect the mutation.
func (r *QuestionRepository) AddToSession(ctx context.Context, sessionID string, qs []entity.Question) ([]entity.Question, error) {
	if uuid.Validate(sessionID) != nil {
		return nil, repository.ErrNotFound
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var next int
	row := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(q.position) + 1, 0)
		FROM sessions s
		LEFT JOIN questions q ON q.session_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`, sessionID)
	if err := row.Scan(&next); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	created := make([]entity.Question, 0, len(qs))
	for i, q := range qs {
		q.SessionID = sessionID
		q.Position = next + i
		row := tx.QueryRow(ctx, `
			INSERT INTO questions (session_id, position, question, answer, note)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`, q.SessionID, q.Position, q.Question, q.Answer, q.Note)
		if err := row.Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		created = append(created, q)
	}

	if _, err := tx.Exec(ctx, `UPDATE sessions SET updated_at = now() WHERE id = $1`, sessionID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	if uuid.Validate(id) != nil {
		return nil, repository.ErrNotFound
	}
	q := &entity.Question{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, session_id, position, question, answer, note, is_pinned, created_at, updated_at
		FROM questions
		WHERE id = $1
	`, id)
	if err := row.Scan(&q.ID, &q.SessionID, &q.Position, &q.Question, &q.Answer,
		&q.Note, &q.IsPinned, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) UpdateNote(ctx context.Context, id, note string) (*entity.Question, error) {
	if uuid.Validate(id) != nil {
		return nil, repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE questions SET note = $1, updated_at = now() WHERE id = $2
	`, note, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *QuestionRepository) TogglePin(ctx context.Context, id string) (*entity.Question, error) {
	if uuid.Validate(id) != nil {
		return nil, repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE questions SET is_pinned = NOT is_pinned, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)
