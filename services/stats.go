package services

import (
	"math"
	"sort"
	"time"
	_ "time/tzdata"

	"github.com/dhu2022-dev/mental-health-checkin/dto"
	"github.com/dhu2022-dev/mental-health-checkin/models"
)

// rollingWindow is the number of trailing day buckets in the rolling average.
const rollingWindow = 7

// AggregateDaily groups check-ins by calendar day in the viewer's zone and
// produces chart-ready buckets: per-day mean mood and a trailing rolling
// average over up to 7 buckets, both rounded to one decimal. Deterministic
// and allocation-fresh on every call; input order does not matter.
func AggregateDaily(records []models.CheckIn, loc *time.Location) []dto.DayBucket {
	if loc == nil {
		loc = time.Local
	}

	type acc struct {
		sum   int
		count int
	}
	byDay := make(map[string]*acc)
	for _, r := range records {
		day := r.RecordedAt.In(loc).Format("2006-01-02")
		cur, ok := byDay[day]
		if !ok {
			cur = &acc{}
			byDay[day] = cur
		}
		cur.sum += r.Mood
		cur.count++
	}

	buckets := make([]dto.DayBucket, 0, len(byDay))
	for day, a := range byDay {
		buckets = append(buckets, dto.DayBucket{
			Date:        day,
			AverageMood: round1(float64(a.sum) / float64(a.count)),
			Count:       a.count,
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })

	// Rolling average over the rounded day values, matching what the chart
	// displays for the individual days.
	for i := range buckets {
		start := i - rollingWindow + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, b := range buckets[start : i+1] {
			sum += b.AverageMood
		}
		buckets[i].RollingAverage = round1(sum / float64(i+1-start))
	}

	return buckets
}

// LoadViewerLocation resolves an IANA zone name sent by the dashboard,
// falling back to the server's local zone. time/tzdata is linked in so
// lookups work in scratch containers.
func LoadViewerLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// round1 rounds half up to one decimal place. Averages of 1..10 moods are
// never negative, so math.Round's half-away-from-zero is half-up here.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
