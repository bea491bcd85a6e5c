package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/testutil"
)

func seedProgress(t *testing.T, h *harness) {
	t.Helper()
	state := domain.NewAppState()
	state.Workouts = []domain.WorkoutEntry{
		testutil.NewTestWorkout("Squat", testutil.WithDaysAgo(3), testutil.WithBodyParts(domain.BodyLegs),
			testutil.WithSets(domain.Set{Reps: 5, Weight: 100})),
		testutil.NewTestWorkout("Squat", testutil.WithDaysAgo(2), testutil.WithBodyParts(domain.BodyLegs),
			testutil.WithSets(domain.Set{Reps: 5, Weight: 105})),
		testutil.NewTestWorkout("Bench Press", testutil.WithDaysAgo(1)),
		testutil.NewTestWorkout("Bench Press", testutil.WithDaysAgo(0)),
	}
	state.Meals = []domain.MealEntry{
		testutil.NewTestMeal("rice", 260),
		testutil.NewTestMeal("rice", 130, testutil.WithMealDaysAgo(1)),
	}
	require.NoError(t, h.repo.Save(context.Background(), state))
}

func TestProgressService(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	seedProgress(t, h)
	svc := service.NewProgressService(h.loader)

	prs, err := svc.PersonalRecords(ctx)
	require.NoError(t, err)
	require.Len(t, prs, 2)
	assert.Equal(t, "Bench Press", prs[0].Exercise)
	assert.Equal(t, 105.0, prs[1].Weight)

	hist, err := svc.ExerciseHistory(ctx, "squat")
	require.NoError(t, err)
	delta, ok := hist.Delta()
	require.True(t, ok)
	assert.Equal(t, 5.0, delta)

	_, err = svc.ExerciseHistory(ctx, "Curl")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	streak, err := svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, streak)

	sum, err := svc.WeeklySummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.WorkoutDays)
	assert.Equal(t, 390, sum.TotalCalories)
	assert.Equal(t, 195.0, sum.AvgDailyCalories)
	assert.Equal(t, 4, sum.Streak)
}
