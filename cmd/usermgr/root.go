package main

import (
	"context"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/common/utils/validate"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/config"
	"pkg.world.dev/usermgr/internal/pkg/printer"
	"pkg.world.dev/usermgr/internal/pkg/tea/style"
)

//nolint:lll // must be on one line
type CLI struct {
	UI      UICmd      `cmd:"" default:"1" group:"Users:"               help:"Interactive user manager (form and table)"`
	List    ListCmd    `cmd:""             group:"Users:"               help:"Print the user table"`
	Add     AddCmd     `cmd:""             group:"Users:"               help:"Create a user"`
	Edit    EditCmd    `cmd:""             group:"Users:"               help:"Update a user; unset fields keep their current value"`
	Delete  DeleteCmd  `cmd:""             group:"Users:"               help:"Delete a user after confirmation"`
	Config  ConfigCmd  `cmd:""             group:"Additional Commands:" help:"Show or change the saved configuration"`
	Version VersionCmd `cmd:""             group:"Additional Commands:" help:"Show the version of the CLI"`

	BaseURL    string `help:"URL of the user API (overrides config and environment)" name:"base-url"`
	ConfigFile string `help:"Path to the TOML config file"                          name:"config"   type:"path"`
	Verbose    bool   `help:"Print the diagnostic log on exit"                      short:"v"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := append([]kong.Option{
		kong.Name("usermgr"),
		kong.Description("Manage the users of a REST API from the terminal."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)
	return kong.New(cli, opts...)
}

type UICmd struct{}

func (c *UICmd) Run(ctx context.Context, deps *Dependencies) error {
	h, err := deps.Users()
	if err != nil {
		return err
	}
	return h.UI(ctx)
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx context.Context, deps *Dependencies) error {
	h, err := deps.Users()
	if err != nil {
		return err
	}
	if baseURL, err := deps.ConfigService.BaseURL(); err == nil {
		printer.Infoln(style.ContextLine("Users", "205", "API", baseURL))
	}
	return h.List(ctx)
}

type AddCmd struct {
	Name  string `flag:"" required:"" help:"The name of the user"`
	Email string `flag:"" required:"" help:"The email of the user"`
}

func (c *AddCmd) Run(ctx context.Context, deps *Dependencies) error {
	h, err := deps.Users()
	if err != nil {
		return err
	}
	return h.Add(ctx, models.AddUserFlags{Name: c.Name, Email: c.Email})
}

type EditCmd struct {
	ID    string `arg:""  help:"The ID of the user to update"`
	Name  string `flag:"" help:"The new name of the user"`
	Email string `flag:"" help:"The new email of the user"`
}

func (c *EditCmd) Run(ctx context.Context, deps *Dependencies) error {
	h, err := deps.Users()
	if err != nil {
		return err
	}
	return h.Edit(ctx, models.EditUserFlags{ID: c.ID, Name: c.Name, Email: c.Email})
}

type DeleteCmd struct {
	ID  string `arg:""  help:"The ID of the user to delete"`
	Yes bool   `flag:"" help:"Skip the confirmation prompt" short:"y"`
}

func (c *DeleteCmd) Run(ctx context.Context, deps *Dependencies) error {
	h, err := deps.Users()
	if err != nil {
		return err
	}
	return h.Delete(ctx, models.DeleteUserFlags{ID: c.ID, Yes: c.Yes})
}

//nolint:lll // must be on one line
type ConfigCmd struct {
	URL        string `flag:"" help:"Save the user API base URL"                                  name:"url"`
	Timeout    string `flag:"" help:"Save the per-request timeout, e.g. 5s (0 disables it)"`
	MaxRetries int    `flag:"" help:"Save the number of retries for idempotent requests (-1 keeps it)" default:"-1"`
}

func (c *ConfigCmd) Run(deps *Dependencies) error {
	cfg := deps.ConfigService.GetConfig()
	changed := false

	if c.URL != "" {
		if err := validate.BaseURL(c.URL); err != nil {
			return err
		}
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
		changed = true
	}
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d < 0 {
			return eris.Wrapf(config.ErrInvalidTimeout, "timeout %q", c.Timeout)
		}
		cfg.Timeout = c.Timeout
		changed = true
	}
	if c.MaxRetries >= 0 {
		cfg.MaxRetries = c.MaxRetries
		changed = true
	}

	if changed {
		if err := deps.ConfigService.Save(); err != nil {
			return err
		}
		printer.Successln("Configuration saved")
	}

	printer.Headerln("Configuration")
	printer.Infof("base_url:    %s\n", valueOrUnset(cfg.BaseURL))
	printer.Infof("timeout:     %s\n", valueOrUnset(cfg.Timeout))
	printer.Infof("max_retries: %d\n", cfg.MaxRetries)
	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	printer.Infof("usermgr %s\n", AppVersion)
	return nil
}
