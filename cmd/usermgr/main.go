package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"pkg.world.dev/usermgr/internal/app/usermgr/common/telemetry"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/config"
	"pkg.world.dev/usermgr/internal/pkg/logger"
	"pkg.world.dev/usermgr/internal/pkg/printer"
)

// This variable will be overridden by ldflags during build
// Example : go build -ldflags "-X main.AppVersion=1.0.0 -X main.PosthogAPIKey=<POSTHOG_API_KEY> -X main.SentryDsn=<SENTRY_DSN>"
//
//nolint:gochecknoglobals // set by ldflags
var (
	AppVersion    string
	PosthogAPIKey string
	SentryDsn     string
	Env           string
)

func init() { //nolint:gochecknoinits // ldflags defaults
	// Set default app version in case not provided by ldflags
	if AppVersion == "" {
		AppVersion = "dev"
	}
	if Env == "" {
		Env = "DEV"
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Sentry initialization
	telemetry.SentryInit(SentryDsn, Env, AppVersion)
	defer telemetry.SentryFlush()

	// Set logger sentry hook
	log.Logger = log.Logger.Hook(telemetry.SentryHook{})

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		printer.Errorln(err.Error())
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	logger.SetDebugMode(cli.Verbose)
	defer logger.PrintLogs()

	// Posthog Initialization
	if dir, err := config.GetCLIConfigDir(); err == nil {
		telemetry.PosthogInit(PosthogAPIKey, dir)
		defer telemetry.PosthogClose()
	}
	telemetry.PosthogCaptureEvent(kctx.Command(), telemetry.RunningEvent)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newDependencies(cli.ConfigFile, cli.BaseURL)
	if err != nil {
		logger.Error(err)
		printer.Errorln(err.Error())
		return 1
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(deps); err != nil {
		logger.Error(err)
		printer.Errorln(err.Error())
		return 1
	}
	return 0
}
