package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/mockmate/mockmate-api/internal/domain/entity"
	repo "github.com/mockmate/mockmate-api/internal/domain/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService owns the session lifecycle: transactional creation with
// the AI-generated question batch, reads in stored order, child-first
// deletion, and the Elasticsearch mirror used for searching.
type SessionService struct {
	Sessions repo.SessionRepository
	Logger   *logrus.Logger
	ES       *elasticsearch.Client
	ESIndex  string
}

func NewSessionService(sessions repo.SessionRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *SessionService {
	return &SessionService{Sessions: sessions, Logger: logger, ES: es, ESIndex: esIndex}
}

type CreateSessionInput struct {
	Role          string
	Experience    string
	TopicsToFocus string
	Description   string
	Questions     []QuestionAnswer
}

// CreateSession persists the session and its initial questions and returns
// the populated record so the client can render without a follow-up fetch.
func (s *SessionService) CreateSession(ctx context.Context, userID string, in CreateSessionInput) (*entity.Session, error) {
	sess := &entity.Session{
		UserID:        userID,
		Role:          in.Role,
		Experience:    in.Experience,
		TopicsToFocus: in.TopicsToFocus,
		Description:   in.Description,
		Questions:     make([]entity.Question, 0, len(in.Questions)),
	}
	for _, qa := range in.Questions {
		sess.Questions = append(sess.Questions, entity.Question{
			Question: qa.Question,
			Answer:   qa.Answer,
		})
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("create session failed")
		}
		return nil, err
	}

	_ = s.indexSession(ctx, sess)
	return sess, nil
}

func (s *SessionService) GetSession(ctx context.Context, userID, id string) (*entity.Session, error) {
	sess, err := s.Sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// ListSessions returns the caller's sessions, most recently created first.
func (s *SessionService) ListSessions(ctx context.Context, userID string) ([]entity.Session, error) {
	return s.Sessions.ListByUser(ctx, userID)
}

func (s *SessionService) DeleteSession(ctx context.Context, userID, id string) error {
	if _, err := s.GetSession(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *SessionService) indexSession(ctx context.Context, sess *entity.Session) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":              sess.ID,
		"user_id":         sess.UserID,
		"role":            sess.Role,
		"experience":      sess.Experience,
		"topics_to_focus": sess.TopicsToFocus,
		"description":     sess.Description,
		"created_at":      sess.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: sess.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("session_id", sess.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("session_id", sess.ID).Warn("es index response error")
	}
	return nil
}

func (s *SessionService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("session_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// SearchSessions performs a multi_match query over the caller's sessions.
func (s *SessionService) SearchSessions(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"role^2", "topics_to_focus", "description"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
