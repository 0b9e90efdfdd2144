package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tsiemens/embedviz/log"
)

const DefaultPort = 8000

// The three assets the viewer needs before the server is worth starting.
const (
	ViewerPage   = "embedding-viewer.html"
	EngineScript = "embedding-engine.js"
	DataFile     = "embedding-data.json"
)

// RequiredFiles is in the order missing files are reported in.
var RequiredFiles = []string{ViewerPage, EngineScript, DataFile}

const shutdownTimeout = 5 * time.Second

// DefaultRoot returns the directory containing the running executable, with
// symlinks resolved. Assets are served relative to it no matter what the
// caller's working directory is.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

// MissingFiles returns the RequiredFiles absent from root, in order.
func MissingFiles(root string) []string {
	var missing []string
	for _, name := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// WithDevHeaders sets the two development headers on every response before
// delegating to h: a CORS allow-all, so the viewer page may fetch the data
// file from any origin, and a cache disable, so reloads always re-read the
// data file from disk.
func WithDevHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		log.Tracef("serve", "%s %s", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}

// Launcher serves the viewer assets under Root until its context is
// cancelled. Out and OpenBrowser are injectable so tests can run the whole
// launcher without console noise or a real browser.
type Launcher struct {
	Root string
	Port int

	Out        io.Writer
	ErrPrinter log.ErrorPrinter

	// OpenBrowser points the user's browser at the viewer URL. nil disables
	// the launch.
	OpenBrowser func(url string) error
}

func NewLauncher(root string, port int) *Launcher {
	return &Launcher{
		Root:        root,
		Port:        port,
		Out:         os.Stdout,
		ErrPrinter:  &log.StderrErrorPrinter{},
		OpenBrowser: openBrowser,
	}
}

// Run performs the preflight check, binds the listener and serves until ctx
// is cancelled. A failed preflight is reported and returns nil without
// binding; a failed bind is returned as an error.
func (l *Launcher) Run(ctx context.Context) error {
	if missing := MissingFiles(l.Root); len(missing) > 0 {
		l.ErrPrinter.Ln("Missing files:")
		for _, name := range missing {
			l.ErrPrinter.F("   %s\n", name)
			if name == DataFile {
				l.ErrPrinter.Ln("   Hint: run 'embedviz extract' to generate", DataFile)
			}
		}
		return nil
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.Port))
	if err != nil {
		return fmt.Errorf("bind port %d: %w", l.Port, err)
	}

	// The listener reports the real port, so Port may be 0.
	url := fmt.Sprintf("http://localhost:%d", ln.Addr().(*net.TCPAddr).Port)

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(l.Out, rule)
	fmt.Fprintln(l.Out, "Starting local web server...")
	fmt.Fprintln(l.Out, rule)
	fmt.Fprintf(l.Out, "Serving from: %s\n", l.Root)
	fmt.Fprintf(l.Out, "URL: %s\n", url)
	if l.OpenBrowser != nil {
		fmt.Fprintln(l.Out, "\nServer running - opening browser...")
	}
	fmt.Fprintln(l.Out, "Press Ctrl+C to stop")
	fmt.Fprintln(l.Out, rule)

	srv := &http.Server{
		Handler: WithDevHeaders(http.FileServer(http.Dir(l.Root))),
	}

	if l.OpenBrowser != nil {
		go func() {
			// Best effort. The server's health does not depend on it.
			if err := l.OpenBrowser(url + "/" + ViewerPage); err != nil {
				log.Verbosef("Browser launch failed: %v\n", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-serveErr // always http.ErrServerClosed after Shutdown

	fmt.Fprintln(l.Out, "\nServer stopped")
	return nil
}
