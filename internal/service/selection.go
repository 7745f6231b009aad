package service

import (
	"errors"

	"github.com/guttosm/savings-service/internal/domain/model"
)

// MinActiveTools is the selection floor: a checked tool cannot be
// unchecked while the active count is at or below it.
const MinActiveTools = 3

// ErrToolNotFound is returned when a toggle names an id outside the catalog.
var ErrToolNotFound = errors.New("tool not found")

// Selection is an immutable snapshot of which catalog tools are active.
// Toggle returns a new Selection; the receiver is never modified.
type Selection struct {
	tools []model.Tool
}

// NewSelection wraps a copy of tools.
func NewSelection(tools []model.Tool) Selection {
	return Selection{tools: model.CloneTools(tools)}
}

// Tools returns a copy of the tool list.
func (s Selection) Tools() []model.Tool {
	return model.CloneTools(s.tools)
}

// ActiveCount is always recomputed from the tool list.
func (s Selection) ActiveCount() int {
	return model.CountChecked(s.tools)
}

// BelowFloor reports whether fewer than MinActiveTools tools are active.
func (s Selection) BelowFloor() bool {
	return s.ActiveCount() < MinActiveTools
}

// Locked reports whether the tool with id is checked and cannot be
// unchecked under the floor rule.
func (s Selection) Locked(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	return s.tools[i].Checked && s.ActiveCount() <= MinActiveTools
}

// Toggle flips the checked flag of the tool with id. Unchecking is
// rejected, without error, while the count before the toggle is at or
// below MinActiveTools. Checking is never blocked.
func (s Selection) Toggle(id int) (Selection, model.ToggleOutcome, error) {
	count := s.ActiveCount()

	i := s.indexOf(id)
	if i < 0 {
		return s, model.ToggleOutcome{ActiveCount: count}, ErrToolNotFound
	}

	if s.tools[i].Checked && count <= MinActiveTools {
		return s, model.ToggleOutcome{ActiveCount: count}, nil
	}

	next := NewSelection(s.tools)
	next.tools[i].Checked = !next.tools[i].Checked

	return next, model.ToggleOutcome{Accepted: true, ActiveCount: next.ActiveCount()}, nil
}

func (s Selection) indexOf(id int) int {
	for i, t := range s.tools {
		if t.ID == id {
			return i
		}
	}
	return -1
}
