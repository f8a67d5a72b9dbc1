package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/notes/internal/devstore"
	"github.com/five82/notes/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", ":5000", "listen address")
	seed := flag.String("seed", "", "YAML file to seed notes from (optional)")
	save := flag.Bool("save", false, "write notes back to the seed file on shutdown")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := logging.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notesd: %v\n", err)
		return 2
	}
	log := logging.Console(os.Stderr, lvl)

	store := devstore.NewStore()
	if *seed != "" {
		if err := store.LoadFile(*seed); err != nil {
			log.Error().Err(err).Str("path", *seed).Msg("load seed")
			return 1
		}
		log.Info().Str("path", *seed).Int("notes", store.Len()).Msg("seeded")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           devstore.NewHandler(store, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", *addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("serve")
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}

	if *save && *seed != "" {
		if err := store.SaveFile(*seed); err != nil {
			log.Error().Err(err).Str("path", *seed).Msg("save snapshot")
			return 1
		}
		log.Info().Str("path", *seed).Int("notes", store.Len()).Msg("saved")
	}
	return 0
}
