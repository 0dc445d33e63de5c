package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-name-keeper/internal/adapter"
	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/MKhiriev/go-name-keeper/internal/tui"
	"github.com/MKhiriev/go-name-keeper/internal/utils"
	"github.com/MKhiriev/go-name-keeper/internal/validators"
	"github.com/MKhiriev/go-name-keeper/models"
)

type App struct {
	controller *service.NamesController
	ui         *tui.TUI
	out        io.Writer

	logger *logger.Logger
}

// NewApp wires the adapter, the controller and the TUI. A missing API URL
// is not an error: the app starts and every network action reports
// [service.ErrConfiguration]. An invalid one is.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out io.Writer, log *logger.Logger) (*App, error) {
	var namesAdapter adapter.NamesAdapter

	a, err := adapter.NewHTTPNamesAdapter(cfg.Adapter, log)
	switch {
	case errors.Is(err, adapter.ErrNoBaseURL):
		log.Warn().Msg("api url is not configured, network actions are disabled")
	case err != nil:
		return nil, fmt.Errorf("error creating names adapter: %w", err)
	default:
		namesAdapter = a
	}

	controller := service.NewNamesController(namesAdapter, log)

	return &App{
		controller: controller,
		ui:         tui.New(controller, buildInfo, log),
		out:        out,
		logger:     log,
	}, nil
}

func (a *App) RunTUI(ctx context.Context) error {
	return a.ui.Run(ctx)
}

func (a *App) List(ctx context.Context) error {
	if err := a.controller.Load(ctx); err != nil {
		return err
	}
	return a.printList()
}

func (a *App) Add(ctx context.Context, text string) error {
	if err := a.controller.Submit(ctx, text); err != nil {
		return err
	}
	return a.printList()
}

func (a *App) Edit(ctx context.Context, id models.EntryID, text string) error {
	if id.IsZero() {
		return validators.ErrInvalidID
	}

	a.controller.StartEdit(models.NameEntry{ID: id})
	if err := a.controller.Submit(ctx, text); err != nil {
		return err
	}
	return a.printList()
}

func (a *App) Remove(ctx context.Context, id models.EntryID) error {
	if err := a.controller.Delete(ctx, id); err != nil {
		return err
	}
	return a.printList()
}

func (a *App) printList() error {
	return WriteList(a.out, a.controller.State().List)
}

// WriteList prints one "id<TAB>texto" line per entry, with terminal control
// sequences removed.
func WriteList(w io.Writer, entries []models.NameEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", utils.PrintableText(e.ID.String()), utils.PrintableText(e.Text)); err != nil {
			return err
		}
	}
	return nil
}

// Check validates raw without any network access. It prints the canonical
// text on success and the failure reason otherwise.
func Check(w io.Writer, raw string) error {
	text, err := validators.Check(raw)
	if err != nil {
		fmt.Fprintf(w, "invalid: %s\n", err)
		return err
	}

	_, err = fmt.Fprintln(w, text)
	return err
}
