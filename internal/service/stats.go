// internal/service/stats.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

// Statistics is a dense month x subunit x employee post-count matrix:
// ISO month label -> subunit name -> employee full name -> count. Every
// month in range, every subunit and every rostered employee is present,
// zero-filled when nothing was published.
type Statistics map[string]map[string]map[string]int

type StatsService struct {
	posts    repository.PostRepositoryIface
	subunits repository.SubunitRepositoryIface
}

func NewStatsService(
	posts repository.PostRepositoryIface,
	subunits repository.SubunitRepositoryIface,
) *StatsService {
	return &StatsService{
		posts:    posts,
		subunits: subunits,
	}
}

// GetStatistics counts published posts per month, subunit and author over
// the inclusive calendar-month range. Posts are bucketed by the author's
// current subunit; an author whose subunit was removed after publication
// is simply absent from the matrix.
func (s *StatsService) GetStatistics(ctx context.Context, startYear, startMonth, endYear, endMonth int) (Statistics, error) {
	if startMonth < 1 || startMonth > 12 || endMonth < 1 || endMonth > 12 {
		return nil, fmt.Errorf("%w: month must be within 1..12", domain.ErrInvalidPeriod)
	}

	// The end boundary is normalized to exclusive by advancing a month.
	endYear, endMonth = nextMonth(endYear, endMonth)

	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end must not precede start", domain.ErrInvalidPeriod)
	}

	months := monthsBetween(start, end)
	labels := make([]string, months)
	for offset := 0; offset < months; offset++ {
		month := (startMonth - 1 + offset) % 12
		year := startYear + (startMonth-1+offset)/12
		labels[offset] = monthLabel(year, month+1)
	}

	subunits, err := s.subunits.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Seed the dense zero matrix and remember where each author counts.
	type bucket struct {
		subunit  string
		employee string
	}
	buckets := make(map[uuid.UUID]bucket)
	stats := make(Statistics, months)
	for _, label := range labels {
		stats[label] = make(map[string]map[string]int, len(subunits))
		for _, subunit := range subunits {
			stats[label][subunit.Name] = make(map[string]int, len(subunit.Employees))
			for _, employee := range subunit.Employees {
				stats[label][subunit.Name][employee.FullName] = 0
				buckets[employee.ID] = bucket{subunit: subunit.Name, employee: employee.FullName}
			}
		}
	}

	posts, err := s.posts.FindPublishedBetween(ctx, start, end, []model.PostStatus{model.StatusPosted, model.StatusArchived})
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.PublishedOn == nil {
			continue
		}
		b, ok := buckets[post.AuthorID]
		if !ok {
			continue
		}
		label := monthLabel(post.PublishedOn.UTC().Year(), int(post.PublishedOn.UTC().Month()))
		if _, ok := stats[label]; !ok {
			continue
		}
		stats[label][b.subunit][b.employee]++
	}

	return stats, nil
}

// nextMonth advances one calendar month, rolling month 13 into the next
// year.
func nextMonth(year, month int) (int, int) {
	month++
	if month > 12 {
		return year + 1, 1
	}
	return year, month
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

func monthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
