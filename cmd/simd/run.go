// Package main starts the simd input simulation server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/winsim/internal/app"
	"github.com/frudas24/winsim/internal/config"
	"github.com/frudas24/winsim/internal/monitor"
	"github.com/frudas24/winsim/internal/session"
	"github.com/frudas24/winsim/internal/simulate"
	"github.com/frudas24/winsim/internal/wininput"
	"github.com/frudas24/winsim/internal/winmsg"
	"github.com/frudas24/winsim/internal/winproc"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || debug
	if cfg.Debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	space, err := simulate.ParseSpace(cfg.MoveSpace)
	if err != nil {
		return err
	}
	sess := session.New(cfg.UIPassword, space)

	injector, err := wininput.NewInjector(wininput.Options{AllowShortSend: cfg.AllowShortSend})
	if err != nil {
		return err
	}

	poster, err := winmsg.NewSystemPoster(winmsg.Options{Synchronous: cfg.SyncMessages})
	if err != nil {
		log.Printf("message posting disabled: %v", err)
		poster = nil
	}
	procs, err := winproc.NewSystem()
	if err != nil {
		log.Printf("window listing disabled: %v", err)
		procs = nil
	}

	appInstance, err := app.New(cfg, sess, app.Deps{
		Input:    injector,
		Poster:   poster,
		Procs:    procs,
		Monitors: monitor.ListMonitors,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("simd starting")
	logConfigStatus(cfg)
	log.Printf("move space: %s", cfg.MoveSpace)
	if cfg.AllowShortSend {
		log.Printf("short SendInput batches: tolerated")
	}
	if cfg.SyncMessages {
		log.Printf("window messages: synchronous")
	}
	logListenStatus(cfg.ListenAddr)
}

// logConfigStatus reports which optional configuration files were found.
func logConfigStatus(cfg config.Config) {
	for _, name := range []string{".env", config.FileName} {
		path := filepath.Join(cfg.DataDir, name)
		if fileExists(path) {
			log.Printf("config check: ok (%s)", path)
		} else {
			log.Printf("config check: missing (%s)", path)
		}
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
