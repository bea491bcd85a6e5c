package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/progress"
)

type progressService struct {
	store *StateLoader
}

func NewProgressService(store *StateLoader) ProgressService {
	return &progressService{store: store}
}

func (s *progressService) PersonalRecords(ctx context.Context) ([]progress.PersonalRecord, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return progress.PersonalRecords(st.Workouts), nil
}

func (s *progressService) ExerciseHistory(ctx context.Context, exercise string) (*progress.ExerciseHistory, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	h := progress.BuildExerciseHistory(st.Workouts, exercise, s.store.Now().Location())
	if len(h.Days) == 0 {
		return nil, fmt.Errorf("no workouts logged for %q: %w", exercise, domain.ErrNotFound)
	}
	return &h, nil
}

func (s *progressService) WeeklySummary(ctx context.Context) (*progress.WeeklySummary, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	sum := progress.Summarize(st, s.store.Now())
	return &sum, nil
}

func (s *progressService) Streak(ctx context.Context) (int, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return progress.Streak(st.Workouts, s.store.Now()), nil
}
