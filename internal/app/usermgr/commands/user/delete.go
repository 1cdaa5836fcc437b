package user

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/manager"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/pkg/printer"
)

const deletePrompt = "Are you sure you want to delete this user?"

func (h *Handler) Delete(ctx context.Context, flags models.DeleteUserFlags) error {
	target, err := h.findUser(ctx, flags.ID)
	if err != nil {
		return eris.Wrap(err, "Delete")
	}

	confirm := h.confirmDelete
	if flags.Yes {
		confirm = manager.Confirmed
	}

	removed, err := h.manager.Remove(ctx, target, confirm)
	if err != nil {
		return eris.Wrap(err, "Delete: failed to delete user")
	}
	if !removed {
		printer.Infoln("Delete canceled")
		return nil
	}

	printer.Successf("Deleted user %s <%s>\n", target.Name, target.Email)
	return nil
}

func (h *Handler) confirmDelete(ctx context.Context, u models.User) (bool, error) {
	prompt := fmt.Sprintf("%s %s <%s> (y/n)", deletePrompt, u.Name, u.Email)
	return h.inputService.Confirm(ctx, prompt, "n")
}
