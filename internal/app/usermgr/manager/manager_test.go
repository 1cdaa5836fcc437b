package manager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pkg.world.dev/usermgr/internal/app/usermgr/clients/api"
	"pkg.world.dev/usermgr/internal/app/usermgr/manager"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

var (
	userA = models.User{ID: "1", Name: "A", Email: "a@x.com"}
	userB = models.User{ID: "2", Name: "B", Email: "b@x.com"}
	userC = models.User{ID: "3", Name: "C", Email: "c@x.com"}

	errNetwork = errors.New("network unreachable")
)

func newManager(t *testing.T, initial []models.User) (*manager.Manager, *api.MockClient) {
	t.Helper()
	client := &api.MockClient{}
	mgr := manager.New(client)
	if initial != nil {
		client.On("ListUsers", mock.Anything).Return(initial, nil).Once()
		require.NoError(t, mgr.Refresh(t.Context()))
	}
	return mgr, client
}

func decline(context.Context, models.User) (bool, error) { return false, nil }

func TestNewManagerStartsCreatingWithEmptyState(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, nil)

	assert.Equal(t, models.Creating{}, mgr.Mode())
	assert.True(t, mgr.Draft().IsEmpty())
	assert.Empty(t, mgr.Users())
	client.AssertExpectations(t)
}

func TestRefreshReplacesCollection(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA, userB})
	require.Equal(t, []models.User{userA, userB}, mgr.Users())

	client.On("ListUsers", mock.Anything).Return([]models.User{userC}, nil).Once()
	require.NoError(t, mgr.Refresh(t.Context()))

	assert.Equal(t, []models.User{userC}, mgr.Users())
	client.AssertExpectations(t)
}

func TestRefreshFailureKeepsCollection(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})

	client.On("ListUsers", mock.Anything).Return(nil, errNetwork).Once()
	err := mgr.Refresh(t.Context())

	require.ErrorIs(t, err, errNetwork)
	assert.Equal(t, []models.User{userA}, mgr.Users())
	client.AssertExpectations(t)
}

func TestUsersReturnsCopy(t *testing.T) {
	t.Parallel()
	mgr, _ := newManager(t, []models.User{userA})

	users := mgr.Users()
	users[0].Name = "changed"

	assert.Equal(t, "A", mgr.Users()[0].Name)
}

func TestSuccessfulCreateResetsFormAndRefreshes(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})
	mgr.SetName("C")
	mgr.SetEmail("c@x.com")

	client.On("CreateUser", mock.Anything, models.UserPayload{Name: "C", Email: "c@x.com"}).Return(nil).Once()
	// The server decides the new list, including order.
	client.On("ListUsers", mock.Anything).Return([]models.User{userC, userA}, nil).Once()

	require.NoError(t, mgr.Submit(t.Context()))

	assert.True(t, mgr.Draft().IsEmpty())
	assert.Equal(t, models.Creating{}, mgr.Mode())
	assert.Equal(t, []models.User{userC, userA}, mgr.Users())
	client.AssertExpectations(t)
}

func TestSubmitSendsTrimmedFields(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{})
	mgr.SetDraft(models.Draft{Name: "  C ", Email: " c@x.com "})

	client.On("CreateUser", mock.Anything, models.UserPayload{Name: "C", Email: "c@x.com"}).Return(nil).Once()
	client.On("ListUsers", mock.Anything).Return([]models.User{userC}, nil).Once()

	require.NoError(t, mgr.Submit(t.Context()))
	client.AssertExpectations(t)
}

func TestSuccessfulUpdateResetsFormAndRefreshes(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA, userB})
	mgr.StartEdit(userB)
	mgr.SetName("Bee")

	client.On("UpdateUser", mock.Anything, "2", models.UserPayload{Name: "Bee", Email: "b@x.com"}).Return(nil).Once()
	renamed := models.User{ID: "2", Name: "Bee", Email: "b@x.com"}
	client.On("ListUsers", mock.Anything).Return([]models.User{userA, renamed}, nil).Once()

	require.NoError(t, mgr.Submit(t.Context()))

	assert.True(t, mgr.Draft().IsEmpty())
	_, editing := models.EditTarget(mgr.Mode())
	assert.False(t, editing)
	assert.Equal(t, []models.User{userA, renamed}, mgr.Users())
	client.AssertExpectations(t)
}

func TestCollectionIsServerResponseNotLocalPatch(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA, userB})

	client.On("DeleteUser", mock.Anything, "1").Return(nil).Once()
	// Another client added C meanwhile; the list must show exactly what the server says.
	client.On("ListUsers", mock.Anything).Return([]models.User{userB, userC}, nil).Once()

	removed, err := mgr.Remove(t.Context(), userA, manager.Confirmed)

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []models.User{userB, userC}, mgr.Users())
	client.AssertExpectations(t)
}

func TestFailedCreateLeavesStateAndDoesNotRefresh(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})
	draft := models.Draft{Name: "C", Email: "c@x.com"}
	mgr.SetDraft(draft)

	client.On("CreateUser", mock.Anything, draft.Payload()).Return(errNetwork).Once()

	err := mgr.Submit(t.Context())

	require.ErrorIs(t, err, errNetwork)
	assert.Equal(t, draft, mgr.Draft())
	assert.Equal(t, models.Creating{}, mgr.Mode())
	assert.Equal(t, []models.User{userA}, mgr.Users())
	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "ListUsers", 1) // only the initial load
}

func TestFailedUpdateStaysInEditing(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})
	mgr.StartEdit(userA)
	mgr.SetEmail("new@x.com")

	client.On("UpdateUser", mock.Anything, "1", mock.Anything).Return(errNetwork).Once()

	require.Error(t, mgr.Submit(t.Context()))

	assert.Equal(t, models.Editing{TargetID: "1"}, mgr.Mode())
	assert.Equal(t, models.Draft{Name: "A", Email: "new@x.com"}, mgr.Draft())
	client.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestRefreshFailureAfterSubmitStillSucceeds(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})
	mgr.SetDraft(models.Draft{Name: "C", Email: "c@x.com"})

	client.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
	client.On("ListUsers", mock.Anything).Return(nil, errNetwork).Once()

	require.NoError(t, mgr.Submit(t.Context()))

	assert.True(t, mgr.Draft().IsEmpty())
	assert.Equal(t, []models.User{userA}, mgr.Users())
	client.AssertExpectations(t)
}

func TestInvalidDraftIssuesNoRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		draft models.Draft
	}{
		{name: "empty", draft: models.Draft{}},
		{name: "missing name", draft: models.Draft{Email: "a@x.com"}},
		{name: "missing email", draft: models.Draft{Name: "A"}},
		{name: "bad email", draft: models.Draft{Name: "A", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mgr, client := newManager(t, nil)
			mgr.SetDraft(tt.draft)

			err := mgr.Submit(t.Context())

			require.ErrorIs(t, err, manager.ErrInvalidDraft)
			assert.Equal(t, tt.draft, mgr.Draft())
			client.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
			client.AssertNotCalled(t, "ListUsers", mock.Anything)
		})
	}
}

func TestStartEditThenCancel(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, nil)

	mgr.StartEdit(userA)
	assert.Equal(t, models.Editing{TargetID: "1"}, mgr.Mode())
	assert.Equal(t, models.Draft{Name: "A", Email: "a@x.com"}, mgr.Draft())

	mgr.Cancel()
	assert.Equal(t, models.Creating{}, mgr.Mode())
	assert.True(t, mgr.Draft().IsEmpty())

	assert.Empty(t, client.Calls)
}

func TestDeclinedDeleteIssuesNoRequest(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})

	removed, err := mgr.Remove(t.Context(), userA, decline)

	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []models.User{userA}, mgr.Users())
	client.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	client.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestConfirmErrorIssuesNoRequest(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})
	confirm := func(context.Context, models.User) (bool, error) { return false, context.Canceled }

	removed, err := mgr.Remove(t.Context(), userA, confirm)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, removed)
	client.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestConfirmSeesTheUser(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA, userB})
	var asked models.User
	confirm := func(_ context.Context, u models.User) (bool, error) {
		asked = u
		return false, nil
	}

	_, err := mgr.Remove(t.Context(), userB, confirm)

	require.NoError(t, err)
	assert.Equal(t, userB, asked)
	client.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestFailedDeleteDoesNotRefresh(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA})
	client.On("DeleteUser", mock.Anything, "1").Return(errNetwork).Once()

	removed, err := mgr.Remove(t.Context(), userA, manager.Confirmed)

	require.ErrorIs(t, err, errNetwork)
	assert.False(t, removed)
	assert.Equal(t, []models.User{userA}, mgr.Users())
	client.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestRowsEmptyCollectionIsPlaceholder(t *testing.T) {
	t.Parallel()
	mgr, _ := newManager(t, []models.User{})

	rows := mgr.Rows()

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Placeholder)
	assert.Empty(t, rows[0].Actions)
	assert.False(t, rows[0].Has(manager.ActionEdit))
	assert.False(t, rows[0].Has(manager.ActionDelete))
}

func TestRowsOrdinalsFollowResponseOrder(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, []models.User{userA, userB})

	rows := mgr.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Ordinal)
	assert.Equal(t, "A", rows[0].User.Name)
	assert.Equal(t, 2, rows[1].Ordinal)
	assert.Equal(t, "B", rows[1].User.Name)
	for _, row := range rows {
		assert.False(t, row.Placeholder)
		assert.Equal(t, []manager.Action{manager.ActionEdit, manager.ActionDelete}, row.Actions)
	}

	// Ordinals belong to positions, not users.
	client.On("ListUsers", mock.Anything).Return([]models.User{userB}, nil).Once()
	require.NoError(t, mgr.Refresh(t.Context()))
	rows = mgr.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Ordinal)
	assert.Equal(t, "B", rows[0].User.Name)
}

func TestActionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Edit", manager.ActionEdit.String())
	assert.Equal(t, "Delete", manager.ActionDelete.String())
	assert.Equal(t, "Unknown", manager.Action(42).String())
}

func TestConcurrentRefreshes(t *testing.T) {
	t.Parallel()
	mgr, client := newManager(t, nil)
	lists := [][]models.User{{userA}, {userB}, {userA, userC}}
	for _, list := range lists {
		client.On("ListUsers", mock.Anything).Return(list, nil).Once()
	}

	g, ctx := errgroup.WithContext(t.Context())
	for range lists {
		g.Go(func() error {
			_ = mgr.Rows()
			return mgr.Refresh(ctx)
		})
	}
	require.NoError(t, g.Wait())

	// Last completion wins; whichever it was, the collection is one of the server lists.
	assert.Contains(t, lists, mgr.Users())
	client.AssertExpectations(t)
}
