package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/models"
)

// shortcutLineLayout is the first layout the parser accepts, so exported
// lines can be re-ingested through the normalizer unchanged (dates shift
// only by sub-minute precision).
const shortcutLineLayout = "Jan 2, 2006 at 3:04PM"

// FormatShortcutLine renders one check-in as a "date; mood; notes" line
func FormatShortcutLine(c models.CheckIn, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	line := fmt.Sprintf("%s; %d", c.RecordedAt.In(loc).Format(shortcutLineLayout), c.Mood)
	if c.Notes != nil {
		line += "; " + *c.Notes
	}
	return line
}

// WriteCheckInsCSV writes the dashboard's CSV columns
func WriteCheckInsCSV(w io.Writer, checkIns []models.CheckIn) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"recorded_at", "mood", "notes"}); err != nil {
		return err
	}
	for _, c := range checkIns {
		notes := ""
		if c.Notes != nil {
			notes = *c.Notes
		}
		record := []string{
			c.RecordedAt.UTC().Format(time.RFC3339),
			fmt.Sprintf("%d", c.Mood),
			notes,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
