package user

import (
	"context"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/pkg/printer"
)

// Edit updates the user with the given ID. Unset fields keep their current value.
func (h *Handler) Edit(ctx context.Context, flags models.EditUserFlags) error {
	target, err := h.findUser(ctx, flags.ID)
	if err != nil {
		return eris.Wrap(err, "Edit")
	}

	h.manager.StartEdit(target)
	if flags.Name != "" {
		h.manager.SetName(flags.Name)
	}
	if flags.Email != "" {
		h.manager.SetEmail(flags.Email)
	}
	draft := h.manager.Draft()

	if err := h.manager.Submit(ctx); err != nil {
		return eris.Wrap(err, "Edit: failed to update user")
	}

	printer.Successf("Updated user %s <%s>\n", draft.Name, draft.Email)
	return nil
}

// findUser refreshes the collection and looks the ID up in it.
func (h *Handler) findUser(ctx context.Context, id string) (models.User, error) {
	if err := h.manager.Refresh(ctx); err != nil {
		return models.User{}, eris.Wrap(err, "failed to fetch users")
	}
	for _, u := range h.manager.Users() {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, eris.Wrapf(ErrUserNotFound, "id %q", id)
}
