package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFormatShortcutLine(t *testing.T) {
	recorded := time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC)

	withNotes := models.CheckIn{Mood: 8, Notes: strPtr("Hang out with friends"), RecordedAt: recorded}
	assert.Equal(t, "Jan 12, 2026 at 9:00PM; 8; Hang out with friends", FormatShortcutLine(withNotes, time.UTC))

	noNotes := models.CheckIn{Mood: 3, RecordedAt: recorded}
	assert.Equal(t, "Jan 12, 2026 at 9:00PM; 3", FormatShortcutLine(noNotes, time.UTC))
}

// Exported lines feed straight back through the ingestion parser, so the
// round trip must preserve mood and notes exactly and the date to the minute.
func TestShortcutLineRoundTrip(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkIns := []models.CheckIn{
		{Mood: 8, Notes: strPtr("Hang out with friends"), RecordedAt: time.Date(2026, 1, 12, 21, 0, 17, 0, time.UTC)},
		{Mood: 1, RecordedAt: time.Date(2026, 2, 3, 9, 41, 0, 0, time.UTC)},
		{Mood: 10, Notes: strPtr("slept late; gym; cooked"), RecordedAt: time.Date(2026, 3, 30, 23, 59, 0, 0, time.UTC)},
	}

	for _, c := range checkIns {
		line := FormatShortcutLine(c, time.UTC)
		parsed, err := ParseSemicolonLine(line, now, time.UTC)
		require.NoError(t, err, "line %q", line)

		assert.Equal(t, c.Mood, parsed.Mood)
		if c.Notes == nil {
			assert.Nil(t, parsed.Notes)
		} else {
			require.NotNil(t, parsed.Notes)
			assert.Equal(t, *c.Notes, *parsed.Notes)
		}
		assert.True(t, parsed.RecordedAt.Equal(c.RecordedAt.Truncate(time.Minute)),
			"line %q parsed to %v", line, parsed.RecordedAt)
	}
}

func TestWriteCheckInsCSV(t *testing.T) {
	checkIns := []models.CheckIn{
		{Mood: 8, Notes: strPtr("row with, comma"), RecordedAt: time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC)},
		{Mood: 5, RecordedAt: time.Date(2026, 1, 13, 8, 30, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCheckInsCSV(&buf, checkIns))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"recorded_at", "mood", "notes"}, rows[0])
	assert.Equal(t, []string{"2026-01-12T21:00:00Z", "8", "row with, comma"}, rows[1])
	assert.Equal(t, []string{"2026-01-13T08:30:00Z", "5", ""}, rows[2])
}
