package interfaces

import (
	"context"

	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

type UserHandler interface {
	UI(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, flags models.AddUserFlags) error
	Edit(ctx context.Context, flags models.EditUserFlags) error
	Delete(ctx context.Context, flags models.DeleteUserFlags) error
}
