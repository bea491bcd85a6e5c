package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/liftlog/internal/nutrition"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "  0%"},
		{"half", 0.5, " 50%"},
		{"full", 1, "100%"},
		{"over clamps", 1.5, "100%"},
		{"negative clamps", -0.5, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, 10))
			assert.True(t, strings.HasSuffix(got, tt.want), "got %q", got)
			assert.Equal(t, 10, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
		})
	}
}

func TestRenderCalorieBar_OverGoalCapsAndFlags(t *testing.T) {
	p := nutrition.DailyProgress(nil, 2000, testNow)
	p.Consumed, p.Ratio, p.Percent, p.OverGoal, p.Over = 2500, 1.25, 100, true, 500

	got := stripANSI(RenderCalorieBar(p, 8))
	assert.Contains(t, got, "100%")
	assert.Contains(t, got, "OVER")
	assert.Equal(t, 8, strings.Count(got, filledBlock))
}

func TestRenderCalorieBar_UnderGoal(t *testing.T) {
	p := nutrition.DailyProgress(nil, 2000, testNow)
	p.Consumed, p.Ratio, p.Percent, p.Remaining = 1000, 0.5, 50, 1000

	got := stripANSI(RenderCalorieBar(p, 8))
	assert.Contains(t, got, "50%")
	assert.NotContains(t, got, "OVER")
	assert.Equal(t, 4, strings.Count(got, filledBlock))
}
