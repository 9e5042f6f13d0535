// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/tui"
)

// screens is the part of the terminal UI the runtime drives.
type screens interface {
	LoginFlow(ctx context.Context) error
	MainLoop(ctx context.Context) (logout bool, err error)
}

type App struct {
	services *service.ClientServices
	ui       screens
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the stored session, then alternates between the sign-in flow
// and the main screen until the user quits.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session := a.services.SessionService.Restore(ctx)
	a.logger.Info().Str("status", session.Status.String()).Str("func", "App.run").Msg("session restored")

	for {
		if !a.services.SessionService.Current().Authenticated() {
			err := a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("func", "App.run").Msg("signed out, back to sign in")
	}
}
