package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/dto"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/models"
	"github.com/dhu2022-dev/mental-health-checkin/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// searchScoreFloor drops candidates whose only similarity is sharing a few
// characters with the query.
const searchScoreFloor = 25

// CheckInServiceOptions contains the dependencies of CheckInService
type CheckInServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	WS     *melody.Melody
	Logger logger.Logger
}

// CheckInService persists and queries check-ins
type CheckInService struct {
	db     *gorm.DB
	redis  *redis.Client
	ws     *melody.Melody
	logger logger.Logger
}

// NewCheckInService creates a CheckInService
func NewCheckInService(opts CheckInServiceOptions) *CheckInService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CheckInService{
		db:     opts.DB,
		redis:  opts.Redis,
		ws:     opts.WS,
		logger: l,
	}
}

// Create appends one canonical record. The record is already validated by
// the normalizer; storage failures surface as DB errors, never client
// errors. On success the new row is broadcast to open dashboards and the
// stats cache is invalidated.
func (s *CheckInService) Create(ctx context.Context, parsed *ParsedCheckIn, source string) (*models.CheckIn, error) {
	checkIn := models.CheckIn{
		Mood:       parsed.Mood,
		Notes:      parsed.Notes,
		RecordedAt: parsed.RecordedAt,
		Source:     source,
	}
	if err := s.db.WithContext(ctx).Create(&checkIn).Error; err != nil {
		s.logger.Error("insert check-in failed: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to save check-in", err)
	}

	s.broadcast(checkIn)

	if s.redis != nil {
		if err := DeleteFromRedis(ctx, s.redis, constants.StatsCachePrefix+"*"); err != nil {
			s.logger.Error("stats cache invalidation failed: %v", err)
		}
	}

	return &checkIn, nil
}

// List returns check-ins ordered by recorded time descending, optionally
// bounded to [from, to].
func (s *CheckInService) List(ctx context.Context, from, to *time.Time) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	tx := s.db.WithContext(ctx).Order("recorded_at desc")
	if from != nil {
		tx = tx.Where("recorded_at >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("recorded_at <= ?", *to)
	}
	if err := tx.Find(&checkIns).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to fetch check-ins", err)
	}
	return checkIns, nil
}

// ListAscending returns the period's check-ins oldest first, the order the
// summarizer wants them in.
func (s *CheckInService) ListAscending(ctx context.Context, from, to time.Time) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	if err := s.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to).
		Order("recorded_at asc").
		Find(&checkIns).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to fetch check-ins", err)
	}
	return checkIns, nil
}

// Search fuzzy-matches query against check-in notes. Notes and query are
// folded to ASCII lowercase, candidates come from a bag-of-characters
// matcher and are ranked by levenshtein similarity. Substring hits get a
// flat bonus so literal matches always rank first.
func (s *CheckInService) Search(ctx context.Context, query string, limit int) ([]dto.SearchResult, error) {
	var checkIns []models.CheckIn
	if err := s.db.WithContext(ctx).
		Where("notes IS NOT NULL").
		Order("recorded_at desc").
		Find(&checkIns).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to fetch check-ins", err)
	}

	normalizedQuery := normalizeText(query)
	if normalizedQuery == "" || len(checkIns) == 0 {
		return []dto.SearchResult{}, nil
	}

	normalized := make([]string, len(checkIns))
	for i, c := range checkIns {
		normalized[i] = normalizeText(*c.Notes)
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	closest := cm.Closest(normalizedQuery)

	results := make([]dto.SearchResult, 0, len(checkIns))
	for i, c := range checkIns {
		score := similarityScore(normalizedQuery, normalized[i])
		if normalized[i] == closest {
			score += 10
		}
		if score < searchScoreFloor {
			continue
		}
		results = append(results, dto.SearchResult{
			CheckIn: ToCheckInResponse(c),
			Score:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ToCheckInResponse maps a model to its wire shape
func ToCheckInResponse(c models.CheckIn) dto.CheckInResponse {
	return dto.CheckInResponse{
		ID:         c.ID,
		Mood:       c.Mood,
		Notes:      c.Notes,
		RecordedAt: c.RecordedAt,
		Source:     c.Source,
		CreatedAt:  c.CreatedAt,
	}
}

func (s *CheckInService) broadcast(checkIn models.CheckIn) {
	if s.ws == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "checkin.created",
		"checkIn": ToCheckInResponse(checkIn),
	})
	if err != nil {
		s.logger.Error("marshal ws payload failed: %v", err)
		return
	}
	if err := s.ws.Broadcast(payload); err != nil {
		s.logger.Error("ws broadcast failed: %v", err)
	}
}

// normalizeText folds text to lowercase ASCII for matching
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// similarityScore is 0..100 levenshtein similarity plus a substring bonus
func similarityScore(query, text string) int {
	if text == "" {
		return 0
	}
	maxLen := len([]rune(query))
	if l := len([]rune(text)); l > maxLen {
		maxLen = l
	}
	distance := levenshtein.DistanceForStrings([]rune(query), []rune(text), levenshtein.DefaultOptions)
	score := 100 - (100*distance)/maxLen
	if strings.Contains(text, query) {
		score += 50
	}
	return score
}
