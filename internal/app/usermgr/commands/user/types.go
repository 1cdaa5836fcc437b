package user

import (
	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/interfaces"
	"pkg.world.dev/usermgr/internal/app/usermgr/manager"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/input"
)

var ErrUserNotFound = eris.New("user not found")

// Interface guard.
var _ interfaces.UserHandler = (*Handler)(nil)

type Handler struct {
	manager      *manager.Manager
	inputService input.ServiceInterface
	// runProgram runs the interactive model; replaced in tests.
	runProgram func(model Model) (Model, error)
}

func NewHandler(mgr *manager.Manager, inputService input.ServiceInterface) *Handler {
	return &Handler{
		manager:      mgr,
		inputService: inputService,
		runProgram:   runTeaProgram,
	}
}
