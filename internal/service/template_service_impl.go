package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

type templateService struct {
	store    *StateLoader
	observer UseCaseObserver
}

func NewTemplateService(store *StateLoader, observers ...UseCaseObserver) TemplateService {
	return &templateService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *templateService) SaveFromDay(ctx context.Context, name string, day time.Time) (*domain.WorkoutTemplate, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries := workoutsOn(st.Workouts, day)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no workouts logged on %s to build a template from: %w", day.Format("2006-01-02"), domain.ErrNotFound)
	}
	return s.Save(ctx, name, entries)
}

func (s *templateService) Save(ctx context.Context, name string, entries []domain.WorkoutEntry) (saved *domain.WorkoutTemplate, err error) {
	fields := map[string]any{"template": name, "exercises": len(entries)}
	defer observe(ctx, s.observer, "save-template", time.Now(), fields, &err)

	t := domain.TemplateFromEntries(name, entries, s.store.Now())
	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, replaced, err := putTemplate(st, t)
		fields["replaced"] = replaced
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *templateService) List(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Templates, nil
}

func (s *templateService) Get(ctx context.Context, name string) (*domain.WorkoutTemplate, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := st.FindTemplate(name)
	if err != nil {
		return nil, err
	}
	t := st.Templates[idx]
	return &t, nil
}

func (s *templateService) Delete(ctx context.Context, name string) (err error) {
	defer observe(ctx, s.observer, "delete-template", time.Now(), map[string]any{"template": name}, &err)

	return s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, _, err := removeTemplate(st, name)
		return next, err
	})
}
