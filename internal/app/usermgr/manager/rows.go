package manager

import (
	"slices"

	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

const PlaceholderText = "No users found"

type Action int

const (
	ActionEdit Action = iota
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionEdit:
		return "Edit"
	case ActionDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Row is one line of the users table. Ordinal is the 1-based position in the
// current collection, not a property of the user.
type Row struct {
	Ordinal     int
	User        models.User
	Actions     []Action
	Placeholder bool
}

func (r Row) Has(action Action) bool {
	return slices.Contains(r.Actions, action)
}

// Project maps users to rows in the given order. An empty collection yields a single
// placeholder row without actions.
func Project(users []models.User) []Row {
	if len(users) == 0 {
		return []Row{{Placeholder: true}}
	}

	rows := make([]Row, 0, len(users))
	for i, user := range users {
		rows = append(rows, Row{
			Ordinal: i + 1,
			User:    user,
			Actions: []Action{ActionEdit, ActionDelete},
		})
	}
	return rows
}
