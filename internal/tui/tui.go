package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/MKhiriev/qryptshare/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.Services
	style     models.StyleConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, style models.StyleConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}

	return &TUI{
		services:  services,
		style:     style,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the mode menu and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu: NewMenuModel(),
		pageForm: NewFormModel(ctx, t.services, t.style),
	}

	return NewRootModel(pages, pageMenu, t.buildInfo)
}
