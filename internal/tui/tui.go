// Package tui is the terminal front end of the names client, built on
// bubbletea. It renders [service.NamesController] state and forwards user
// actions to it.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/MKhiriev/go-name-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	controller *service.NamesController
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(controller *service.NamesController, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{controller: controller, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newNamesModel(ctx, t.controller, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("tui stopped by context")
			return nil
		}
		t.logger.Err(err).Msg("tui exited with error")
		return err
	}

	return nil
}
