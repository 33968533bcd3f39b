package entity

import "time"

// Question is a single prompt/answer pair belonging to exactly one session.
// Position establishes the stable within-session ordering; it is assigned
// monotonically at insert time and never reused.
type Question struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session"`
	Position  int       `json:"-"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Note      string    `json:"note,omitempty"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
