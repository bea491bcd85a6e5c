package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

// backupTimeLayout names corrupt-data backups; it sorts chronologically and
// contains no characters that are awkward in file names.
const backupTimeLayout = "20060102-150405"

// StateLoader wraps a StateRepo with the load/apply/save cycle every use
// case follows, and recovers from unreadable data by backing it up and
// starting from an empty state.
type StateLoader struct {
	repo   repository.StateRepo
	logger *slog.Logger
	warn   io.Writer
	now    func() time.Time

	mu sync.Mutex
	// reset is set once corrupt data has been backed up and reported, and
	// cleared by the next successful read.
	reset bool
}

type LoaderOption func(*StateLoader)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *StateLoader) { l.now = now }
}

// WithLogger sets where recovery events are logged.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *StateLoader) { l.logger = logger }
}

// WithWarnings sets where user-facing warnings are printed.
func WithWarnings(w io.Writer) LoaderOption {
	return func(l *StateLoader) { l.warn = w }
}

func NewStateLoader(repo repository.StateRepo, opts ...LoaderOption) *StateLoader {
	l := &StateLoader{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		warn:   io.Discard,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now is the loader's clock; services date new entries with it.
func (l *StateLoader) Now() time.Time { return l.now() }

// Load returns the persisted state. Corrupt data is backed up, reported,
// and replaced by an empty state instead of failing. The backup and warning
// happen once per loader until the data can be read again.
func (l *StateLoader) Load(ctx context.Context) (domain.AppState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.repo.Load(ctx)
	if err == nil {
		l.reset = false
		return state, nil
	}
	if !errors.Is(err, domain.ErrCorruptData) {
		return domain.AppState{}, fmt.Errorf("loading data: %w", err)
	}
	if l.reset {
		return domain.NewAppState(), nil
	}
	l.reset = true

	backup, bErr := l.repo.Backup(ctx, ".corrupt-"+l.now().Format(backupTimeLayout))
	if bErr != nil {
		l.logger.ErrorContext(ctx, "state_backup_failed", "location", l.repo.Location(), "error", bErr.Error())
	}
	l.logger.WarnContext(ctx, "state_reset",
		"location", l.repo.Location(),
		"backup", backup,
		"cause", err.Error(),
	)

	msg := fmt.Sprintf("Warning: could not read %s (%v); starting with empty data.", l.repo.Location(), err)
	if backup != "" {
		msg += fmt.Sprintf(" The old data was saved to %s.", backup)
	}
	fmt.Fprintln(l.warn, msg)
	return domain.NewAppState(), nil
}

// Update loads the state, applies fn and saves the result. Nothing is saved
// when fn fails.
func (l *StateLoader) Update(ctx context.Context, fn func(domain.AppState) (domain.AppState, error)) error {
	state, err := l.Load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(state)
	if err != nil {
		return err
	}
	if err := l.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving data: %w", err)
	}
	return nil
}
