package service_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/testutil"
)

type harness struct {
	repo     *repository.JSONStateRepo
	loader   *service.StateLoader
	warnings *bytes.Buffer
	now      time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		repo:     repository.NewJSONStateRepo(filepath.Join(t.TempDir(), "liftlog.json")),
		warnings: &bytes.Buffer{},
		now:      testutil.FixedNow,
	}
	h.loader = service.NewStateLoader(h.repo,
		service.WithClock(func() time.Time { return h.now }),
		service.WithWarnings(h.warnings),
	)
	return h
}

func intPtr(n int) *int { return &n }
