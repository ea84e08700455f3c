package directory

import (
	"github.com/five82/roster/internal/users"
)

// Phase is the load lifecycle of the directory.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// State is the complete directory state. Treat it as a value: Reduce returns
// a new State and never mutates the slices it was given.
type State struct {
	Phase   Phase
	Message string // failure message, set only in PhaseFailed

	Users    []users.User // authoritative list
	Filtered []users.User // FilterUsers(Users, Query) once loaded
	Query    string

	selected     users.User
	hasSelection bool
}

// Initial returns the state before the load completes.
func Initial() State {
	return State{Phase: PhaseLoading}
}

// Selected returns the selected user and whether one is selected.
func (s State) Selected() (users.User, bool) {
	return s.selected, s.hasSelection
}

// IsSelected reports whether id is the current selection.
func (s State) IsSelected(id int64) bool {
	return s.hasSelection && s.selected.ID == id
}

// ShowNoResults reports whether the "no results" message replaces the list.
func (s State) ShowNoResults() bool {
	return s.Phase == PhaseLoaded && len(s.Filtered) == 0 && s.Query != ""
}

// Action is a state transition request. See Reduce.
type Action interface {
	isAction()
}

// LoadSucceeded carries the decoded, non-empty user list.
type LoadSucceeded struct {
	Users []users.User
}

// LoadFailed carries the human-readable failure message.
type LoadFailed struct {
	Message string
}

// SetQuery replaces the search text.
type SetQuery struct {
	Query string
}

// Activate selects the user with ID, as a click on its row does.
type Activate struct {
	ID int64
}

// Confirm selects the first filtered user, or clears the selection when the
// filtered view is empty.
type Confirm struct{}

// ClearSelection drops the current selection.
type ClearSelection struct{}

func (LoadSucceeded) isAction()  {}
func (LoadFailed) isAction()     {}
func (SetQuery) isAction()       {}
func (Activate) isAction()       {}
func (Confirm) isAction()        {}
func (ClearSelection) isAction() {}

// Reduce applies a to s and returns the next state.
//
// The load phase moves out of PhaseLoading once and never reverts, so late or
// duplicate load results are ignored. The filtered view is recomputed
// synchronously whenever the list or the query changes, and only once loaded.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoadSucceeded:
		if s.Phase != PhaseLoading {
			return s
		}
		if len(a.Users) == 0 {
			s.Phase = PhaseFailed
			s.Message = users.ErrEmptyList.Error()
			return s
		}
		s.Phase = PhaseLoaded
		s.Users = a.Users
		return recompute(s)

	case LoadFailed:
		if s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseFailed
		s.Message = a.Message
		if s.Message == "" {
			s.Message = unknownErrorMessage
		}
		return s

	case SetQuery:
		s.Query = a.Query
		if s.Phase != PhaseLoaded {
			return s
		}
		return recompute(s)

	case Activate:
		if s.Phase != PhaseLoaded {
			return s
		}
		for _, u := range s.Users {
			if u.ID == a.ID {
				s.selected = u
				s.hasSelection = true
				break
			}
		}
		return s

	case Confirm:
		if s.Phase != PhaseLoaded {
			return s
		}
		if len(s.Filtered) > 0 {
			s.selected = s.Filtered[0]
			s.hasSelection = true
		} else {
			s = clearSelection(s)
		}
		return s

	case ClearSelection:
		return clearSelection(s)
	}
	return s
}

func recompute(s State) State {
	s.Filtered = FilterUsers(s.Users, s.Query)
	if NormalizeQuery(s.Query) == "" {
		s = clearSelection(s)
	}
	return s
}

func clearSelection(s State) State {
	s.selected = users.User{}
	s.hasSelection = false
	return s
}
