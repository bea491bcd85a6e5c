package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/progress"
)

type workoutService struct {
	store    *StateLoader
	observer UseCaseObserver
}

func NewWorkoutService(store *StateLoader, observers ...UseCaseObserver) WorkoutService {
	return &workoutService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *workoutService) Log(ctx context.Context, entry domain.WorkoutEntry) (logged *LoggedWorkout, err error) {
	fields := map[string]any{"exercise": entry.Exercise, "sets": len(entry.Sets)}
	defer observe(ctx, s.observer, "log-workout", time.Now(), fields, &err)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Date.IsZero() {
		entry.Date = s.store.Now()
	}

	var (
		saved domain.WorkoutEntry
		prs   []progress.PRResult
	)
	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, e, results, err := addWorkout(st, entry)
		saved, prs = e, results
		return next, err
	})
	if err != nil {
		return nil, err
	}
	fields["prs"] = countPRs(prs)
	return &LoggedWorkout{Entry: saved, PRs: prs}, nil
}

func (s *workoutService) Edit(ctx context.Context, id string, edit domain.WorkoutEdit) (updated *domain.WorkoutEntry, err error) {
	defer observe(ctx, s.observer, "edit-workout", time.Now(), map[string]any{"id": id}, &err)

	var out domain.WorkoutEntry
	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, e, err := editWorkout(st, id, edit)
		out = e
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workoutService) Delete(ctx context.Context, id string) (removed *domain.WorkoutEntry, err error) {
	defer observe(ctx, s.observer, "delete-workout", time.Now(), map[string]any{"id": id}, &err)

	var out domain.WorkoutEntry
	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, e, err := removeWorkout(st, id)
		out = e
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workoutService) Get(ctx context.Context, id string) (*domain.WorkoutEntry, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := st.FindWorkout(id)
	if err != nil {
		return nil, err
	}
	w := st.Workouts[idx]
	return &w, nil
}

func (s *workoutService) List(ctx context.Context, filter WorkoutFilter) ([]domain.WorkoutEntry, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.WorkoutEntry
	for _, w := range st.Workouts {
		if filter.BodyPart != "" && !w.HasBodyPart(filter.BodyPart) {
			continue
		}
		if filter.Exercise != "" && !domain.SameExercise(w.Exercise, filter.Exercise) {
			continue
		}
		out = append(out, w)
	}
	// Newest first; entries logged at the same instant keep reverse log order.
	reverse(out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *workoutService) OnDay(ctx context.Context, day time.Time) ([]domain.WorkoutEntry, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return workoutsOn(st.Workouts, day), nil
}

func (s *workoutService) Exercises(ctx context.Context) ([]string, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Exercises(), nil
}

func workoutsOn(workouts []domain.WorkoutEntry, day time.Time) []domain.WorkoutEntry {
	y, m, d := day.Date()
	var out []domain.WorkoutEntry
	for _, w := range workouts {
		wy, wm, wd := w.Date.In(day.Location()).Date()
		if wy == y && wm == m && wd == d {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func countPRs(results []progress.PRResult) int {
	n := 0
	for _, r := range results {
		if r.IsPR {
			n++
		}
	}
	return n
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
