package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/edutube/internal/client/api"
	"github.com/dmitrijs2005/edutube/internal/client/config"
	"github.com/dmitrijs2005/edutube/internal/netx"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// uploadFunc matches netx.UploadToPresignedURL.
type uploadFunc func(ctx context.Context, client *http.Client, url, contentType string, body io.Reader, size int64, progress netx.ProgressFunc) error

type App struct {
	config *config.Config
	api    api.Client
	upload uploadFunc

	// storage is used for direct uploads and carries no timeout.
	storage *http.Client

	in          *bufio.Reader
	out         io.Writer
	interactive bool

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) *App {
	return &App{
		config:      c,
		api:         api.NewHTTPClient(c.ServerURL, c.RequestTimeout),
		upload:      netx.UploadToPresignedURL,
		storage:     &http.Client{},
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.mode)
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Health(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Run checks the server once, starts the watcher and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to edutube CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.in, a.out)
}
