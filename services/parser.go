package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
)

// ParsedCheckIn is the canonical record every ingestion path converges to.
// The normalizer either produces a complete one or fails; it never returns
// a partially filled record.
type ParsedCheckIn struct {
	RecordedAt time.Time
	Mood       int
	Notes      *string
}

// shortcutDateLayouts are tried in order. The first entry is the default
// date format the iOS Shortcuts app produces ("Jan 12, 2026 at 9:00PM");
// the rest cover common manual/curl formats. Layouts without a zone are
// interpreted in the supplied location.
var shortcutDateLayouts = []string{
	"Jan 2, 2006 at 3:04PM",
	"Jan 2, 2006 at 3:04 PM",
	"Jan 2, 2006 at 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006 3:04PM",
	"01/02/2006",
}

// Accepted field aliases, consulted in priority order after lowercasing the
// incoming keys. A fixed table instead of reflection so the accepted shapes
// stay documented in one place.
var (
	moodAliases  = []string{"mood", "score", "rating"}
	notesAliases = []string{"notes", "note", "text", "comment"}
	dateAliases  = []string{"date", "recorded_at", "recordedat", "when", "timestamp"}
)

// rawStringKeys is the fallback chain for plain strings that upstream
// automation tools wrapped in an object.
var rawStringKeys = []string{"text", "string", "value", "content"}

// ParseShortcutDate parses free date text against the known layouts.
// Returns false when no layout matches.
func ParseShortcutDate(s string, loc *time.Location) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range shortcutDateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseSemicolonLine parses the primary ingestion shape
// "<date>; <mood>; <notes...>". Notes may themselves contain semicolons.
// An unparseable date segment is recoverable and falls back to now; a bad
// mood is not.
func ParseSemicolonLine(raw string, now time.Time, loc *time.Location) (*ParsedCheckIn, error) {
	parts := strings.Split(raw, ";")
	if len(parts) < 2 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRawLine,
			"Invalid raw format: expected 'date; mood; notes', got "+strconv.Quote(raw), nil)
	}

	recordedAt, ok := ParseShortcutDate(strings.TrimSpace(parts[0]), loc)
	if !ok {
		recordedAt = now
	}

	mood, err := parseMood(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	// Only the outer whitespace is trimmed from the tail; interior "; "
	// separators belong to the notes text itself.
	var notes *string
	if len(parts) > 2 {
		joined := strings.TrimSpace(strings.Join(parts[2:], ";"))
		if joined != "" {
			notes = &joined
		}
	}

	return &ParsedCheckIn{RecordedAt: recordedAt, Mood: mood, Notes: notes}, nil
}

// NormalizeCheckIn converts a decoded JSON object into a canonical record.
// Shapes are tried in a fixed order: a "raw" semicolon line first (possibly
// wrapped in an object by the automation tool), then structured mood/notes/
// date fields under their aliases. Pure; the caller supplies now and the
// viewer's location.
func NormalizeCheckIn(body map[string]interface{}, now time.Time, loc *time.Location) (*ParsedCheckIn, error) {
	folded := foldKeys(body)

	if raw, ok := folded["raw"]; ok && raw != nil {
		return ParseSemicolonLine(ExtractRawString(raw), now, loc)
	}

	moodValue, ok := lookupAlias(folded, moodAliases)
	if !ok {
		keys := make([]string, 0, len(body))
		for k := range body {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, errors.NewAppError(errors.ErrCodeMissingFields,
			"Invalid body: expected either { raw: 'date; mood; notes' } or { mood, notes?, date? }, got keys ["+strings.Join(keys, ", ")+"]", nil)
	}

	mood, err := UnwrapMood(moodValue)
	if err != nil {
		return nil, err
	}

	var notes *string
	if v, ok := lookupAlias(folded, notesAliases); ok && v != nil {
		trimmed := strings.TrimSpace(ExtractRawString(v))
		if trimmed != "" {
			notes = &trimmed
		}
	}

	recordedAt := now
	if v, ok := lookupAlias(folded, dateAliases); ok && v != nil {
		// Unparseable date text is recoverable everywhere: keep now.
		if t, ok := ParseShortcutDate(ExtractRawString(v), loc); ok {
			recordedAt = t
		}
	}

	return &ParsedCheckIn{RecordedAt: recordedAt, Mood: mood, Notes: notes}, nil
}

// UnwrapMood digs a mood integer out of whatever the client sent: a JSON
// number, a numeric string, or a wrapper object ({value: N} or any
// single-entry object). The offending raw value is named in the error.
func UnwrapMood(v interface{}) (int, error) {
	switch m := v.(type) {
	case float64:
		if m != math.Trunc(m) {
			return 0, moodError(v)
		}
		return checkMoodRange(int(m), v)
	case int:
		return checkMoodRange(m, v)
	case string:
		return parseMood(m)
	case map[string]interface{}:
		if inner, ok := m["value"]; ok {
			return UnwrapMood(inner)
		}
		if len(m) == 1 {
			for _, inner := range m {
				return UnwrapMood(inner)
			}
		}
		return 0, moodError(v)
	default:
		return 0, moodError(v)
	}
}

// ExtractRawString best-effort extracts a string from a value that should
// have been a plain string. Conventional keys are checked first, then the
// first string-typed value in key order, then the value's string form.
func ExtractRawString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case map[string]interface{}:
		for _, key := range rawStringKeys {
			if inner, ok := s[key].(string); ok {
				return inner
			}
		}
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if inner, ok := s[k].(string); ok {
				return inner
			}
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parseMood(s string) (int, error) {
	mood, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, moodError(s)
	}
	return checkMoodRange(mood, s)
}

func checkMoodRange(mood int, raw interface{}) (int, error) {
	if mood < constants.MoodMin || mood > constants.MoodMax {
		return 0, moodError(raw)
	}
	return mood, nil
}

func moodError(raw interface{}) error {
	return errors.NewAppError(errors.ErrCodeInvalidMood,
		fmt.Sprintf("Invalid mood: must be an integer %d-%d, got %v", constants.MoodMin, constants.MoodMax, raw), nil)
}

// foldKeys lowercases the object's keys so alias lookup is case-insensitive.
// On a casing collision the alphabetically first original key wins.
func foldKeys(body map[string]interface{}) map[string]interface{} {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	folded := make(map[string]interface{}, len(body))
	for _, k := range keys {
		lower := strings.ToLower(k)
		if _, exists := folded[lower]; !exists {
			folded[lower] = body[k]
		}
	}
	return folded
}

func lookupAlias(folded map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, alias := range aliases {
		if v, ok := folded[alias]; ok {
			return v, true
		}
	}
	return nil, false
}
