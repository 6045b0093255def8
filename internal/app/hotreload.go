package app

import (
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
)

// HotReloader watches the running binary and reports when a rebuilt one
// replaces it, so the UI can offer a restart during development.
type HotReloader struct {
	execPath      string
	startupTime   time.Time
	checkInterval time.Duration
	logger        hclog.Logger

	mu          sync.Mutex
	stopCh      chan struct{}
	onNewBinary func() // Called from the watch goroutine
}

// NewHotReloader creates a reloader for the current executable.
// Returns nil if the executable path cannot be determined.
func NewHotReloader(checkInterval time.Duration, logger hclog.Logger) *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}
	return newHotReloader(execPath, checkInterval, logger)
}

func newHotReloader(execPath string, checkInterval time.Duration, logger hclog.Logger) *HotReloader {
	// go build replaces the file; follow symlinks to watch the real one
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}

	info, err := os.Stat(execPath)
	if err != nil {
		return nil
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &HotReloader{
		execPath:      execPath,
		startupTime:   info.ModTime(),
		checkInterval: checkInterval,
		logger:        logger.Named("hotreload"),
	}
}

// OnNewBinary sets the callback invoked once a newer binary is detected.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.mu.Lock()
	h.onNewBinary = callback
	h.mu.Unlock()
}

// Start begins watching in a background goroutine.
func (h *HotReloader) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopCh != nil {
		return
	}
	h.stopCh = make(chan struct{})
	go h.watchLoop(h.stopCh)
	h.logger.Debug("watching", "path", h.execPath, "modified", h.startupTime.Format("15:04:05"))
}

// Stop stops the watcher goroutine. It is safe to call more than once.
func (h *HotReloader) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
}

func (h *HotReloader) watchLoop(stopCh chan struct{}) {
	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !h.checkForUpdate() {
				continue
			}
			h.logger.Info("newer binary detected", "path", h.execPath)
			h.mu.Lock()
			cb := h.onNewBinary
			if h.stopCh == stopCh {
				h.stopCh = nil
			}
			h.mu.Unlock()
			if cb != nil {
				cb()
			}
			// Only trigger once; Start again after ResetBaseline to keep watching
			return
		}
	}
}

// checkForUpdate returns true if the binary has been modified since startup.
func (h *HotReloader) checkForUpdate() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return info.ModTime().After(h.startupTime)
}

// ExecPath returns the path to the watched executable.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// ResetBaseline adopts the current modification time, so a declined restart
// does not prompt again for the same binary.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.mu.Lock()
		h.startupTime = info.ModTime()
		h.mu.Unlock()
	}
}

// Restart replaces the current process with the new binary, keeping
// arguments and environment. It does not return on success.
func (h *HotReloader) Restart() error {
	h.logger.Info("restarting", "path", h.execPath)
	return syscall.Exec(h.execPath, os.Args, os.Environ())
}
