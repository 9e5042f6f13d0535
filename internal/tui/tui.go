// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

// Package tui is the terminal front end of the Noveltea client. It renders
// state owned by the service layer and forwards user actions to it; it keeps
// no business rules of its own.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/workers"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// ErrUserQuit is returned when the user leaves the program from a screen.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services        *service.ClientServices
	buildInfo       models.AppBuildInfo
	refreshInterval time.Duration
	logger          *logger.Logger
}

// New creates the terminal UI. A positive refreshInterval enables the
// background refresh of the main screen.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, refreshInterval time.Duration, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{
		services:        services,
		buildInfo:       buildInfo,
		refreshInterval: refreshInterval,
		logger:          log,
	}, nil
}

// LoginFlow runs the sign-in screens until the session is authenticated or
// the user quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.SessionService),
		pageRegister: NewRegisterModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the lists screen. It reports whether the user signed out.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, clipboard.WriteAll)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	job := workers.NewRefreshJob(t.services.LibraryService, t.refreshInterval, func(snap models.LibrarySnapshot) {
		program.Send(snapshotMsg{snap: snap, background: true})
	}, t.logger)
	bg := workers.NewWorkers(job)
	bg.Start(ctx)
	defer bg.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
