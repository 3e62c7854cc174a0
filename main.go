package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/app"
	"github.com/llehouerou/moo/internal/client"
	"github.com/llehouerou/moo/internal/config"
	"github.com/llehouerou/moo/internal/errmsg"
	"github.com/llehouerou/moo/internal/icons"
	pagelayout "github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/logging"
	"github.com/llehouerou/moo/internal/mpris"
	"github.com/llehouerou/moo/internal/notify"
	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/state"
	"github.com/llehouerou/moo/internal/stderr"
	"github.com/llehouerou/moo/internal/ui/cover"
	"github.com/llehouerou/moo/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, logFile, err := logging.Open(cfg.Debug)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	// before the speaker opens, so ALSA chatter lands in the log
	if err := stderr.Start(logger); err != nil {
		logger.Warn("capture stderr", "error", err)
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateLoad, err))
	}
	defer stateMgr.Close()
	stateMgr.SetMaxHistory(cfg.HistorySize)

	srv, err := client.New(cfg.GetServer())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpServerVerify, err))
	}

	maxBytes, err := cfg.GetCacheMaxBytes()
	if err != nil {
		return err
	}
	cache := player.NewCache(cfg.GetCacheDir(), maxBytes, srv)

	p := player.New()
	defer p.Stop()

	deps := app.Deps{
		Config: cfg,
		Client: srv,
		Player: p,
		Cache:  cache,
		State:  stateMgr,
		Cell:   cellSize(cfg),
		Logger: logger,
	}
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpNotifyRaise, err))
		} else {
			deps.Notifier = n
		}
	}
	if wc := cfg.GetWeather(); cfg.WeatherEnabled() {
		deps.Weather = weather.New(wc.URL, wc.Format)
	}
	if cover.Supported() {
		deps.Cover = cover.New(true, cover.DefaultWidth, cover.DefaultHeight, deps.Cell)
	}

	m := app.New(deps)
	prog := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(p, func(code string) {
			prog.Send(app.MPRISKeyMsg{Code: code})
		})
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer closeQuietly(adapter, logger)
		}
	}

	logger.Info("starting", "server", srv.Base())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// cellSize prefers configured cell dimensions, then the terminal's own.
func cellSize(cfg *config.Config) pagelayout.CellSize {
	if cfg.Layout.CellWidth > 0 && cfg.Layout.CellHeight > 0 {
		return pagelayout.CellSize{Width: cfg.Layout.CellWidth, Height: cfg.Layout.CellHeight}
	}
	if cell, ok := cover.TerminalCellSize(); ok {
		return cell
	}
	lc := cfg.GetLayout()
	return pagelayout.CellSize{Width: lc.CellWidth, Height: lc.CellHeight}
}

func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("close", "error", err)
	}
}
