package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
	repo "github.com/mockmate/mockmate-api/internal/domain/repository"
)

type fakeQuestionRepo struct {
	addFn        func(ctx context.Context, sessionID string, qs []entity.Question) ([]entity.Question, error)
	getByIDFn    func(ctx context.Context, id string) (*entity.Question, error)
	deleteFn     func(ctx context.Context, id string) error
	updateNoteFn func(ctx context.Context, id, note string) (*entity.Question, error)
	togglePinFn  func(ctx context.Context, id string) (*entity.Question, error)
}

func (f *fakeQuestionRepo) AddToSession(ctx context.Context, sessionID string, qs []entity.Question) ([]entity.Question, error) {
	return f.addFn(ctx, sessionID, qs)
}
func (f *fakeQuestionRepo) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeQuestionRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeQuestionRepo) UpdateNote(ctx context.Context, id, note string) (*entity.Question, error) {
	return f.updateNoteFn(ctx, id, note)
}
func (f *fakeQuestionRepo) TogglePin(ctx context.Context, id string) (*entity.Question, error) {
	return f.togglePinFn(ctx, id)
}

func ownedSessionRepo(owner string) *fakeSessionRepo {
	return &fakeSessionRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Session, error) {
			return &entity.Session{ID: id, UserID: owner}, nil
		},
	}
}

func TestAddQuestions(t *testing.T) {
	questions := &fakeQuestionRepo{
		addFn: func(ctx context.Context, sessionID string, qs []entity.Question) ([]entity.Question, error) {
			out := make([]entity.Question, len(qs))
			for i, q := range qs {
				q.ID = "q-new"
				q.SessionID = sessionID
				q.Position = 5 + i
				out[i] = q
			}
			return out, nil
		},
	}
	svc := NewQuestionService(questions, ownedSessionRepo("owner"), nil)

	out, err := svc.AddQuestions(context.Background(), "owner", "sess-1", []QuestionAnswer{{Question: "Q", Answer: "A"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "sess-1", out[0].SessionID)
	assert.Equal(t, 5, out[0].Position)
}

func TestAddQuestionsSessionChecks(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{}, ownedSessionRepo("owner"), nil)
	_, err := svc.AddQuestions(context.Background(), "intruder", "sess-1", []QuestionAnswer{{Question: "Q", Answer: "A"}})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	missing := &fakeSessionRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Session, error) {
			return nil, repo.ErrNotFound
		},
	}
	svc = NewQuestionService(&fakeQuestionRepo{}, missing, nil)
	_, err = svc.AddQuestions(context.Background(), "owner", "nope", []QuestionAnswer{{Question: "Q", Answer: "A"}})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	deleted := ""
	questions := &fakeQuestionRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Question, error) {
			return &entity.Question{ID: id, SessionID: "sess-1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewQuestionService(questions, ownedSessionRepo("owner"), nil)

	require.NoError(t, svc.DeleteQuestion(context.Background(), "owner", "q-1"))
	assert.Equal(t, "q-1", deleted)

	err := svc.DeleteQuestion(context.Background(), "intruder", "q-1")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDeleteQuestionAlreadyGone(t *testing.T) {
	questions := &fakeQuestionRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Question, error) {
			return nil, repo.ErrNotFound
		},
	}
	svc := NewQuestionService(questions, ownedSessionRepo("owner"), nil)

	err := svc.DeleteQuestion(context.Background(), "owner", "q-1")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestUpdateNote(t *testing.T) {
	questions := &fakeQuestionRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Question, error) {
			return &entity.Question{ID: id, SessionID: "sess-1"}, nil
		},
		updateNoteFn: func(ctx context.Context, id, note string) (*entity.Question, error) {
			return &entity.Question{ID: id, SessionID: "sess-1", Note: note}, nil
		},
	}
	svc := NewQuestionService(questions, ownedSessionRepo("owner"), nil)

	q, err := svc.UpdateNote(context.Background(), "owner", "q-1", "revisit this")
	require.NoError(t, err)
	assert.Equal(t, "revisit this", q.Note)
}

func TestTogglePin(t *testing.T) {
	questions := &fakeQuestionRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Question, error) {
			return &entity.Question{ID: id, SessionID: "sess-1"}, nil
		},
		togglePinFn: func(ctx context.Context, id string) (*entity.Question, error) {
			return &entity.Question{ID: id, SessionID: "sess-1", IsPinned: true}, nil
		},
	}
	svc := NewQuestionService(questions, ownedSessionRepo("owner"), nil)

	q, err := svc.TogglePin(context.Background(), "owner", "q-1")
	require.NoError(t, err)
	assert.True(t, q.IsPinned)

	_, err = svc.TogglePin(context.Background(), "intruder", "q-1")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
