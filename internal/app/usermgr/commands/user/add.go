package user

import (
	"context"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/pkg/printer"
)

func (h *Handler) Add(ctx context.Context, flags models.AddUserFlags) error {
	h.manager.Cancel()
	h.manager.SetDraft(models.Draft{Name: flags.Name, Email: flags.Email})

	if err := h.manager.Submit(ctx); err != nil {
		return eris.Wrap(err, "Add: failed to create user")
	}

	printer.Successf("Created user %s <%s>\n", flags.Name, flags.Email)
	return nil
}
