package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testNow is a Sunday.
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestDayLabel(t *testing.T) {
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC), "Today"},
		{time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC), "Yesterday"},
		{time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC), "Thursday"},
		{time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), "Jun 1"},
		{time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), "Jun 16"},
		{time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), "Dec 31, 2024"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DayLabel(tc.at, testNow), "at=%s", tc.at)
	}
}

func TestDayLabel_UsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, tokyo)
	// 20:00 UTC on the 14th is 05:00 on the 15th in Tokyo.
	assert.Equal(t, "Today", DayLabel(time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC), now))
}

func TestKcal(t *testing.T) {
	assert.Equal(t, "0 kcal", Kcal(0))
	assert.Equal(t, "180 kcal", Kcal(180))
	assert.Equal(t, "2,150 kcal", Kcal(2150))
	assert.Equal(t, "123,456 kcal", Kcal(123456))
	assert.Equal(t, "-1,234", groupThousands(-1234))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 set", Plural(1, "set"))
	assert.Equal(t, "0 sets", Plural(0, "set"))
	assert.Equal(t, "3 days", Plural(3, "day"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0f8fad5b", stripANSI(ShortID("0f8fad5b-d9cb-469f-a165-70867728950e")))
	assert.Equal(t, "abc", stripANSI(ShortID("abc")))
}

func TestRenderBox_Title(t *testing.T) {
	got := stripANSI(RenderBox("leg day", "Squat"))
	assert.Contains(t, got, "LEG DAY")
	assert.Contains(t, got, "Squat")
	assert.True(t, strings.HasPrefix(got, "╭"))
}

func TestRenderTable_Alignment(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"x", "10"}, {"yy", "5"}}, 1))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, []string{"A   BB", "──  ──", "x   10", "yy   5"}, lines)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
