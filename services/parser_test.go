package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShortcutDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "shortcut default format",
			input: "Jan 12, 2026 at 9:00PM",
			want:  time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "shortcut format with space before meridiem",
			input: "Feb 10, 2026 at 9:02 AM",
			want:  time.Date(2026, 2, 10, 9, 2, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "rfc3339",
			input: "2026-01-12T21:00:00Z",
			want:  time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date only",
			input: "2026-01-12",
			want:  time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  Jan 12, 2026 at 9:00PM  ",
			want:  time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "empty", input: "", ok: false},
		{name: "blank", input: "   ", ok: false},
		{name: "garbage", input: "not-a-date", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseShortcutDate(tt.input, time.UTC)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseSemicolonLine(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full line", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("Jan 12, 2026 at 9:00PM; 8; Hang out with friends", now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.Mood)
		require.NotNil(t, parsed.Notes)
		assert.Equal(t, "Hang out with friends", *parsed.Notes)
		assert.True(t, parsed.RecordedAt.Equal(time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC)))
	})

	t.Run("no notes", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("Jan 12, 2026 at 9:00PM; 8", now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.Mood)
		assert.Nil(t, parsed.Notes)
	})

	t.Run("empty notes segment is absent", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("Jan 12, 2026 at 9:00PM; 8; ", now, time.UTC)
		require.NoError(t, err)
		assert.Nil(t, parsed.Notes)
	})

	t.Run("notes keep their semicolons", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("Jan 12, 2026 at 9:00PM; 8; slept late; gym; cooked", now, time.UTC)
		require.NoError(t, err)
		require.NotNil(t, parsed.Notes)
		assert.Equal(t, "slept late; gym; cooked", *parsed.Notes)
	})

	t.Run("interior note whitespace survives", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("Jan 12, 2026 at 9:00PM; 8;  double  spaced ; tail ", now, time.UTC)
		require.NoError(t, err)
		require.NotNil(t, parsed.Notes)
		assert.Equal(t, "double  spaced ; tail", *parsed.Notes)
	})

	t.Run("unparseable date falls back to now", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("not-a-date; 5; ok", now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 5, parsed.Mood)
		assert.True(t, parsed.RecordedAt.Equal(now))
	})

	t.Run("every valid mood parses", func(t *testing.T) {
		for mood := 1; mood <= 10; mood++ {
			line := fmt.Sprintf("Jan 12, 2026 at 9:00PM; %d; note", mood)
			parsed, err := ParseSemicolonLine(line, now, time.UTC)
			require.NoError(t, err, "mood %d", mood)
			assert.Equal(t, mood, parsed.Mood)
		}
	})

	t.Run("invalid moods never produce a record", func(t *testing.T) {
		for _, moodText := range []string{"0", "11", "-3", "42", "abc", "7.5", ""} {
			line := "Jan 12, 2026 at 9:00PM; " + moodText + "; note"
			parsed, err := ParseSemicolonLine(line, now, time.UTC)
			require.Error(t, err, "mood %q", moodText)
			assert.Nil(t, parsed)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrCodeInvalidMood, appErr.Code)
			assert.Contains(t, appErr.Message, moodText)
		}
	})

	t.Run("fewer than two segments", func(t *testing.T) {
		parsed, err := ParseSemicolonLine("just some text", now, time.UTC)
		require.Error(t, err)
		assert.Nil(t, parsed)
		assert.Equal(t, errors.ErrCodeInvalidRawLine, errors.GetAppError(err).Code)
	})
}

func TestNormalizeCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("raw string field", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"raw": "Jan 12, 2026 at 9:00PM; 8; Hang out with friends",
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.Mood)
		require.NotNil(t, parsed.Notes)
		assert.Equal(t, "Hang out with friends", *parsed.Notes)
	})

	t.Run("raw wrapped in a text object", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"raw": map[string]interface{}{"text": "Jan 12, 2026 at 9:00PM; 7; ok"},
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 7, parsed.Mood)
	})

	t.Run("raw wrapped under an unknown key", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"raw": map[string]interface{}{"whatever": "Jan 12, 2026 at 9:00PM; 6"},
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 6, parsed.Mood)
	})

	t.Run("raw takes priority over structured fields", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"raw":  "Jan 12, 2026 at 9:00PM; 6",
			"mood": float64(2),
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 6, parsed.Mood)
	})

	t.Run("structured fields", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"mood":  float64(5),
			"notes": "Some notes",
			"date":  "Feb 10, 2026 at 9:02AM",
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 5, parsed.Mood)
		require.NotNil(t, parsed.Notes)
		assert.Equal(t, "Some notes", *parsed.Notes)
		assert.True(t, parsed.RecordedAt.Equal(time.Date(2026, 2, 10, 9, 2, 0, 0, time.UTC)))
	})

	t.Run("aliases are case-insensitive and ordered", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"Score":     float64(9),
			"Note":      "upper case keys",
			"Timestamp": "2026-01-12",
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Mood)
		require.NotNil(t, parsed.Notes)
		assert.Equal(t, "upper case keys", *parsed.Notes)
	})

	t.Run("mood alias priority", func(t *testing.T) {
		// mood outranks score regardless of key order
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"score": float64(2),
			"mood":  float64(8),
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.Mood)
	})

	t.Run("mood as numeric string", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{"mood": "7"}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 7, parsed.Mood)
	})

	t.Run("mood in a value wrapper", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"mood": map[string]interface{}{"value": float64(4)},
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 4, parsed.Mood)
	})

	t.Run("mood in a single-entry wrapper", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"mood": map[string]interface{}{"level": "3"},
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 3, parsed.Mood)
	})

	t.Run("non-integer mood fails", func(t *testing.T) {
		_, err := NormalizeCheckIn(map[string]interface{}{"mood": float64(7.5)}, now, time.UTC)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidMood, errors.GetAppError(err).Code)
	})

	t.Run("out-of-range mood names the raw value", func(t *testing.T) {
		_, err := NormalizeCheckIn(map[string]interface{}{"mood": float64(11)}, now, time.UTC)
		require.Error(t, err)
		assert.Contains(t, errors.GetAppError(err).Message, "11")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := NormalizeCheckIn(map[string]interface{}{"something": "else"}, now, time.UTC)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		assert.Equal(t, errors.ErrCodeMissingFields, appErr.Code)
		assert.Contains(t, appErr.Message, "something")
	})

	t.Run("unparseable date defaults to now", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"mood": float64(5),
			"date": "whenever",
		}, now, time.UTC)
		require.NoError(t, err)
		assert.True(t, parsed.RecordedAt.Equal(now))
	})

	t.Run("absent date defaults to now", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{"mood": float64(5)}, now, time.UTC)
		require.NoError(t, err)
		assert.True(t, parsed.RecordedAt.Equal(now))
	})

	t.Run("empty notes become absent", func(t *testing.T) {
		parsed, err := NormalizeCheckIn(map[string]interface{}{
			"mood":  float64(5),
			"notes": "   ",
		}, now, time.UTC)
		require.NoError(t, err)
		assert.Nil(t, parsed.Notes)
	})
}

func TestExtractRawString(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{name: "plain string", input: "hello", want: "hello"},
		{
			name:  "text key wins",
			input: map[string]interface{}{"text": "a", "value": "b"},
			want:  "a",
		},
		{
			name:  "conventional key order",
			input: map[string]interface{}{"content": "c", "string": "s"},
			want:  "s",
		},
		{
			name:  "first string value anywhere",
			input: map[string]interface{}{"n": float64(1), "z": "found"},
			want:  "found",
		},
		{name: "number falls back to string form", input: float64(8), want: "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRawString(tt.input))
		})
	}
}

func TestUnwrapMood(t *testing.T) {
	valid := []struct {
		name  string
		input interface{}
		want  int
	}{
		{name: "float", input: float64(8), want: 8},
		{name: "int", input: 3, want: 3},
		{name: "numeric string", input: " 10 ", want: 10},
		{name: "value wrapper", input: map[string]interface{}{"value": float64(2)}, want: 2},
		{name: "nested wrapper", input: map[string]interface{}{"value": map[string]interface{}{"value": "6"}}, want: 6},
		{name: "single-entry wrapper", input: map[string]interface{}{"anything": float64(9)}, want: 9},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapMood(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []struct {
		name  string
		input interface{}
	}{
		{name: "fractional", input: float64(6.5)},
		{name: "zero", input: float64(0)},
		{name: "eleven", input: float64(11)},
		{name: "negative", input: float64(-3)},
		{name: "word", input: "abc"},
		{name: "bool", input: true},
		{name: "nil", input: nil},
		{name: "multi-entry wrapper without value", input: map[string]interface{}{"a": float64(1), "b": float64(2)}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnwrapMood(tt.input)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidMood, errors.GetAppError(err).Code)
		})
	}
}
