package model

import "time"

// Session is the state of one calculator view: a headcount and the
// session's own copy of the tool catalog.
type Session struct {
	ID        string    `json:"id"`
	Headcount int       `json:"headcount"`
	Tools     []Tool    `json:"tools"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveToolCount is the number of checked tools in the session.
func (s Session) ActiveToolCount() int {
	return CountChecked(s.Tools)
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	s.Tools = CloneTools(s.Tools)
	return s
}
