package formatter

import (
	"testing"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTemplate(t *testing.T) {
	tpl := domain.WorkoutTemplate{
		Name:      "Leg Day",
		BodyParts: []domain.BodyPart{domain.BodyLegs},
		Exercises: []domain.TemplateExercise{
			{Exercise: "Squat", BodyPart: domain.BodyLegs},
			{Exercise: "Calf Raise", BodyPart: domain.BodyLegs},
		},
		CreatedAt: testNow,
	}
	got := stripANSI(FormatTemplate(tpl))
	assert.Contains(t, got, "LEG DAY")
	assert.Contains(t, got, "1. Squat (legs)")
	assert.Contains(t, got, "2. Calf Raise (legs)")

	list := stripANSI(FormatTemplateList([]domain.WorkoutTemplate{tpl}, testNow))
	assert.Contains(t, list, "Leg Day")
	assert.Contains(t, list, "Today")
	assert.Contains(t, stripANSI(FormatTemplateList(nil, testNow)), "No templates saved")
}
