package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// DefaultSearchLimit caps results when the caller gives no limit
const DefaultSearchLimit = 10

// Score weights. Full containment always outranks partial overlap.
const (
	scoreNameMatch        = 20
	scoreBioMatch         = 20
	scoreExpertiseMatch   = 20
	scoreCourseExact      = 50
	scoreCourseSubstring  = 20
	scoreSessionType      = 30
	scoreDayContainment   = 40
	scoreDayOverlap       = 10
	scoreTimeContainment  = 20
	scoreTimeOverlap      = 5
	fullDayStartMinute    = 0
	fullDayEndMinute      = 23*60 + 59
)

// SearchQuery carries the raw query values as supplied on the wire.
// Malformed time values score as absent but still count as supplied
// criteria for the zero-score filter.
type SearchQuery struct {
	Q           string
	Course      string
	SessionType string
	DayOfWeek   string // "0".."6"
	Start       string // "HH:MM"
	End         string // "HH:MM"
	Limit       int
}

// hasCriteria reports whether any filterable criterion was supplied
func (q SearchQuery) hasCriteria() bool {
	return q.Q != "" || q.Course != "" || q.SessionType != "" ||
		q.DayOfWeek != "" || q.Start != "" || q.End != ""
}

type RankedTutor struct {
	Tutor *model.Tutor `json:"tutor"`
	Score int          `json:"score"`
}

// SearchService ranks tutors against a query. Read-only: it never mutates
// any collection, so it runs outside the engine lock.
type SearchService struct {
	tutors repository.TutorRepository
	logger *zap.Logger
}

// Search scores every tutor and returns them ordered by descending score,
// stable on ties, truncated to the query limit. When no criteria were
// supplied at all, every tutor is returned; otherwise zero scores drop out.
func (s *SearchService) Search(ctx context.Context, query SearchQuery) ([]RankedTutor, error) {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}

	limit := query.Limit
	if limit < 1 {
		limit = DefaultSearchLimit
	}

	filter := query.hasCriteria()

	var ranked []RankedTutor
	for _, tutor := range tutors {
		score := scoreTutor(tutor, query)
		if filter && score == 0 {
			continue
		}
		ranked = append(ranked, RankedTutor{Tutor: tutor, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.logger.Debug("Tutor search",
		zap.String("q", query.Q),
		zap.String("course", query.Course),
		zap.Int("results", len(ranked)),
	)
	return ranked, nil
}

func scoreTutor(tutor *model.Tutor, query SearchQuery) int {
	score := 0

	if query.Q != "" {
		q := strings.ToLower(query.Q)
		if strings.Contains(strings.ToLower(tutor.Name), q) {
			score += scoreNameMatch
		}
		if strings.Contains(strings.ToLower(tutor.Bio), q) {
			score += scoreBioMatch
		}
		for _, tag := range tutor.Expertise {
			if strings.Contains(strings.ToLower(tag), q) {
				score += scoreExpertiseMatch
				break
			}
		}
	}

	if query.Course != "" {
		course := strings.ToLower(query.Course)
		exact := false
		substring := false
		for _, tag := range tutor.Expertise {
			lower := strings.ToLower(tag)
			if lower == course {
				exact = true
				break
			}
			if strings.Contains(lower, course) {
				substring = true
			}
		}
		if exact {
			score += scoreCourseExact
		} else if substring {
			score += scoreCourseSubstring
		}
	}

	if query.SessionType != "" && tutor.OffersSessionType(query.SessionType) {
		score += scoreSessionType
	}

	score += scoreAvailability(tutor, query)

	return score
}

// scoreAvailability applies one of the two mutually exclusive time modes
func scoreAvailability(tutor *model.Tutor, query SearchQuery) int {
	day, dayOK := parseDayOfWeek(query.DayOfWeek)
	start, startOK := ParseClock(query.Start)
	end, endOK := ParseClock(query.End)

	if dayOK {
		// Day mode: only slots on the requested day count. Without a
		// usable time window the whole day is the window.
		if !startOK {
			start = fullDayStartMinute
		}
		if !endOK {
			end = fullDayEndMinute
		}
		score := 0
		for _, slot := range tutor.Availability {
			if slot.DayOfWeek != day {
				continue
			}
			if slot.Contains(start, end) {
				return scoreDayContainment
			}
			if overlapsWindow(slot, start, end) {
				score += scoreDayOverlap
			}
		}
		return score
	}

	if startOK || endOK {
		// Time-only mode: scan every slot regardless of day
		if !startOK {
			start = fullDayStartMinute
		}
		if !endOK {
			end = fullDayEndMinute
		}
		score := 0
		for _, slot := range tutor.Availability {
			if slot.Contains(start, end) {
				return scoreTimeContainment
			}
			if overlapsWindow(slot, start, end) {
				score += scoreTimeOverlap
			}
		}
		return score
	}

	return 0
}

func overlapsWindow(slot model.AvailabilitySlot, start, end int) bool {
	return slot.StartMinute < end && slot.EndMinute > start
}

func parseDayOfWeek(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	day, err := strconv.Atoi(value)
	if err != nil || day < 0 || day > 6 {
		return 0, false
	}
	return day, true
}
