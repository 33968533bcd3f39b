package entity

import "time"

// Session is an interview-preparation record owned by one user.
// Questions holds the session's questions in insertion order; it is
// populated on reads and carried alongside on transactional creates.
type Session struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user"`
	Role          string     `json:"role"`
	Experience    string     `json:"experience"`
	TopicsToFocus string     `json:"topicsToFocus"`
	Description   string     `json:"description,omitempty"`
	Questions     []Question `json:"questions"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
