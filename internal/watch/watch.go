// Package watch re-runs puzzles when their input files change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Handler is called once per debounced change of a day's input file.
type Handler func(ctx context.Context, day int)

// Watcher watches a directory of dayNN.txt files.
type Watcher struct {
	dir      string
	debounce time.Duration
	days     map[int]bool
	handler  Handler
	logger   zerolog.Logger

	mu      sync.Mutex
	fs      *fsnotify.Watcher
	pending map[int]*time.Timer
	running bool
	fire    chan int
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher over dir. Only the listed days trigger handler; an
// empty list accepts every day.
func New(dir string, debounce time.Duration, days []int, handler Handler, logger zerolog.Logger) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch: handler is nil")
	}
	if debounce <= 0 {
		return nil, errors.New("watch: debounce must be positive")
	}
	var allowed map[int]bool
	if len(days) > 0 {
		allowed = make(map[int]bool, len(days))
		for _, d := range days {
			allowed[d] = true
		}
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		days:     allowed,
		handler:  handler,
		logger:   logger,
		pending:  make(map[int]*time.Timer),
	}, nil
}

// Start begins watching. It does not block; call Stop to shut down.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return errors.New("watch: already running")
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("watch: create %s: %w", w.dir, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch: add %s: %w", w.dir, err)
	}

	w.fs = fsw
	w.fire = make(chan int)
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.loop(ctx)
	w.logger.Info().Str("dir", w.dir).Dur("debounce", w.debounce).Msg("watching inputs")
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	for day, t := range w.pending {
		t.Stop()
		delete(w.pending, day)
	}
	w.mu.Unlock()

	<-w.doneCh
	_ = w.fs.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watch error")
		case day := <-w.fire:
			w.logger.Info().Int("day", day).Msg("input changed")
			w.handler(ctx, day)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	day, ok := DayFromPath(event.Name)
	if !ok {
		return
	}
	if w.days != nil && !w.days[day] {
		return
	}
	w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("watch event")
	w.schedule(day)
}

// schedule (re)arms the debounce timer for day.
func (w *Watcher) schedule(day int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if t, ok := w.pending[day]; ok {
		t.Stop()
	}
	stop := w.stopCh
	w.pending[day] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, day)
		w.mu.Unlock()
		select {
		case w.fire <- day:
		case <-stop:
		}
	})
}

// DayFromPath extracts the day from an input file name like day07.txt.
func DayFromPath(path string) (int, bool) {
	name := filepath.Base(path)
	rest, ok := strings.CutPrefix(name, "day")
	if !ok {
		return 0, false
	}
	digits, ok := strings.CutSuffix(rest, ".txt")
	if !ok || digits == "" {
		return 0, false
	}
	day, err := strconv.Atoi(digits)
	if err != nil || day < 1 {
		return 0, false
	}
	return day, true
}
