// Package manager holds the user manager state: the last fetched users collection,
// the form draft and whether the form creates or edits a record.
//
// The collection is only ever replaced by a successful list call. Mutations never
// patch it locally; every successful create, update or delete is followed by a refresh.
package manager

import (
	"context"
	"slices"
	"sync"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/clients/api"
	"pkg.world.dev/usermgr/internal/app/usermgr/common/utils/validate"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/pkg/logger"
)

var ErrInvalidDraft = eris.New("invalid user form")

// ConfirmFunc is asked before a delete is issued. Returning false cancels the delete.
type ConfirmFunc func(ctx context.Context, user models.User) (bool, error)

// Confirmed is a ConfirmFunc for callers that already asked the user.
func Confirmed(context.Context, models.User) (bool, error) {
	return true, nil
}

// Manager is safe for concurrent use. Overlapping calls are not sequenced against
// each other: whichever refresh completes last wins.
type Manager struct {
	client api.ClientInterface

	mu    sync.Mutex
	users []models.User
	draft models.Draft
	mode  models.FormMode
}

func New(client api.ClientInterface) *Manager {
	return &Manager{
		client: client,
		users:  []models.User{},
		mode:   models.Creating{},
	}
}

// Users returns a copy of the current collection.
func (m *Manager) Users() []models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.users)
}

func (m *Manager) Draft() models.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

func (m *Manager) Mode() models.FormMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Refresh replaces the collection with the server's current list. On failure the
// previous collection is kept.
func (m *Manager) Refresh(ctx context.Context) error {
	users, err := m.client.ListUsers(ctx)
	if err != nil {
		logger.ErrorWithFields("Error fetching users", err, map[string]interface{}{"op": "refresh"})
		return eris.Wrap(err, "refresh")
	}

	m.mu.Lock()
	m.users = users
	m.mu.Unlock()

	logger.Debugf("fetched %d users", len(users))
	return nil
}

// StartEdit switches the form to edit the given user and loads its fields into the draft.
func (m *Manager) StartEdit(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = models.Editing{TargetID: user.ID}
	m.draft = models.Draft{Name: user.Name, Email: user.Email}
}

// Cancel drops the draft and returns the form to creating.
func (m *Manager) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Manager) SetDraft(draft models.Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = draft
}

func (m *Manager) SetName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Name = name
}

func (m *Manager) SetEmail(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Email = email
}

// Submit creates or updates a user from the draft. On success the form is reset and the
// collection refreshed; on failure draft and mode are left untouched.
func (m *Manager) Submit(ctx context.Context) error {
	m.mu.Lock()
	draft, mode := m.draft, m.mode
	m.mu.Unlock()

	if err := validateDraft(draft); err != nil {
		logger.ErrorWithFields("Invalid user form", err, map[string]interface{}{"op": "submit"})
		return err
	}

	var err error
	var op string
	switch mode := mode.(type) {
	case models.Editing:
		op = "update"
		err = m.client.UpdateUser(ctx, mode.TargetID, draft.Payload())
	default:
		op = "create"
		err = m.client.CreateUser(ctx, draft.Payload())
	}
	if err != nil {
		logger.ErrorWithFields("Error saving user", err, map[string]interface{}{"op": op})
		return eris.Wrap(err, op)
	}

	m.mu.Lock()
	m.reset()
	m.mu.Unlock()

	// The mutation went through; a failed refresh is already logged and keeps the old list.
	_ = m.Refresh(ctx)
	return nil
}

// Remove deletes user after confirm agrees and refreshes the collection. It reports
// whether a delete was issued and succeeded.
func (m *Manager) Remove(ctx context.Context, user models.User, confirm ConfirmFunc) (bool, error) {
	ok, err := confirm(ctx, user)
	if err != nil {
		return false, eris.Wrap(err, "confirm delete")
	}
	if !ok {
		logger.Debugf("delete of user %s declined", user.ID)
		return false, nil
	}

	if err := m.client.DeleteUser(ctx, user.ID); err != nil {
		logger.ErrorWithFields("Error deleting user", err, map[string]interface{}{"op": "delete", "id": user.ID})
		return false, eris.Wrap(err, "delete")
	}

	_ = m.Refresh(ctx)
	return true, nil
}

// Rows projects the current collection for display.
func (m *Manager) Rows() []Row {
	return Project(m.Users())
}

// reset must be called with mu held.
func (m *Manager) reset() {
	m.mode = models.Creating{}
	m.draft = models.Draft{}
}

func validateDraft(draft models.Draft) error {
	if err := validate.Required("name", draft.Name); err != nil {
		return eris.Wrap(ErrInvalidDraft, err.Error())
	}
	if err := validate.Email(draft.Email); err != nil {
		return eris.Wrap(ErrInvalidDraft, err.Error())
	}
	return nil
}
