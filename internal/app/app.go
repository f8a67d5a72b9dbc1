package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/notes/internal/config"
	"github.com/five82/notes/internal/logging"
	"github.com/five82/notes/internal/notestore"
	"github.com/five82/notes/internal/prefs"
	"github.com/five82/notes/internal/ui"
)

// Options configure the notes application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/notes/prefs.toml
	ListOnly   bool   // print the note list and exit instead of starting the TUI
	Stdout     io.Writer
}

// Run boots the notes client until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	client, err := notestore.NewClient(cfg.BackendURL,
		notestore.WithTimeout(cfg.RequestTimeout),
		notestore.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init note store client: %w", err)
	}
	logger.Info().Str("backend", client.BaseURL()).Dur("timeout", cfg.RequestTimeout).Bool("list_only", opts.ListOnly).Msg("starting")

	if opts.ListOnly {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		return PrintList(ctx, client, out, logger)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	err = ui.Run(ui.Options{
		Context:    ctx,
		Store:      client,
		Logger:     logger,
		BackendURL: client.BaseURL(),
		LogPath:    cfg.LogFile,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Interrupted by a signal; treat as a normal exit.
		err = nil
	}
	logger.Info().Err(err).Msg("stopped")
	return err
}
