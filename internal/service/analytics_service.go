package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tablemenu/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	DefaultWindowDays = 30
	topLimit          = 10
)

// EntryPages are the paths that count a customer visit as a new session;
// incidental page loads elsewhere do not inflate the customer figure.
var EntryPages = []string{"/", "/menu"}

// AnalyticsService derives the consolidated summary from the visitor, order
// and activity stores over a rolling window. It is a pure read aggregation;
// the only side effect is the short-lived summary cache.
type AnalyticsService struct {
	repo  AnalyticsRepository
	logs  LogRepository
	cache SummaryCache
	loc   *time.Location

	// now is swappable for tests.
	now func() time.Time
}

func NewAnalyticsService(repo AnalyticsRepository, logs LogRepository, cache SummaryCache, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		repo:  repo,
		logs:  logs,
		cache: cache,
		loc:   loc,
		now:   time.Now,
	}
}

// Summary computes the fixed-shape statistics for a trailing window ending at
// query time. The daily series always has exactly windowDays entries in
// chronological order, and the hourly distribution always has 24 buckets.
func (s *AnalyticsService) Summary(ctx context.Context, windowDays int) (*domain.Summary, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	if s.cache != nil {
		if raw, ok := s.cache.GetSummary(ctx, windowDays); ok {
			var cached domain.Summary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	now := s.now().In(s.loc)
	// The window covers windowDays calendar days ending today.
	startDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).
		AddDate(0, 0, -(windowDays - 1))
	end := now

	summary := &domain.Summary{WindowDays: windowDays}

	visitors, err := s.repo.VisitorCounts(startDay, end, EntryPages)
	if err != nil {
		return nil, err
	}
	summary.Visitors = visitors

	totalOrders, totalRevenue, err := s.repo.OrderTotals(startDay, end)
	if err != nil {
		return nil, err
	}
	summary.TotalOrders = totalOrders
	summary.TotalRevenue = totalRevenue

	if summary.PopularItems, err = s.repo.PopularItems(startDay, end, topLimit); err != nil {
		return nil, err
	}
	if summary.PopularItems == nil {
		summary.PopularItems = []domain.PopularItem{}
	}
	if summary.PopularCats, err = s.repo.PopularCategories(startDay, end, topLimit); err != nil {
		return nil, err
	}
	if summary.PopularCats == nil {
		summary.PopularCats = []domain.PopularCategory{}
	}

	hourly, err := s.repo.HourlyOrderCounts(startDay, end, s.loc.String())
	if err != nil {
		return nil, err
	}
	summary.Hourly = zeroFillHours(hourly)

	revenueByDate, err := s.repo.DailyRevenueByDate(startDay, end, s.loc.String())
	if err != nil {
		return nil, err
	}
	visitorsByDate, err := s.repo.DailyVisitorsByDate(startDay, end, s.loc.String())
	if err != nil {
		return nil, err
	}
	summary.DailyRevenue, summary.DailyVisitors = zeroFillDays(startDay, windowDays, revenueByDate, visitorsByDate)

	if s.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.cache.SetSummary(ctx, windowDays, payload); err != nil {
				log.Printf("[analytics] failed to cache summary: %v", err)
			}
		}
	}
	return summary, nil
}

// zeroFillHours expands sparse hour buckets into all 24 hours of the day.
func zeroFillHours(counts map[int]int) []domain.HourBucket {
	buckets := make([]domain.HourBucket, 24)
	for hour := 0; hour < 24; hour++ {
		buckets[hour] = domain.HourBucket{Hour: hour, OrderCount: counts[hour]}
	}
	return buckets
}

// zeroFillDays expands the sparse per-date maps into contiguous series with
// one entry per calendar day, so charts never need to interpolate.
func zeroFillDays(startDay time.Time, windowDays int,
	revenue map[string]domain.DailyRevenuePoint, visitors map[string]int,
) ([]domain.DailyRevenuePoint, []domain.DailyVisitorPoint) {
	revenueSeries := make([]domain.DailyRevenuePoint, 0, windowDays)
	visitorSeries := make([]domain.DailyVisitorPoint, 0, windowDays)

	for i := 0; i < windowDays; i++ {
		date := startDay.AddDate(0, 0, i).Format("2006-01-02")

		point, ok := revenue[date]
		if !ok {
			point = domain.DailyRevenuePoint{Date: date, Revenue: decimal.Zero}
		}
		revenueSeries = append(revenueSeries, point)

		visitorSeries = append(visitorSeries, domain.DailyVisitorPoint{
			Date:       date,
			VisitCount: visitors[date],
		})
	}
	return revenueSeries, visitorSeries
}

// RebuildDailyRevenue replays the order store for one date and refreshes the
// rollup row; the result is always derivable from orders alone.
func (s *AnalyticsService) RebuildDailyRevenue(ctx context.Context, date string) (*domain.DailyRevenue, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, s.loc); err != nil {
		return nil, invalid("date", "must be YYYY-MM-DD")
	}
	return s.repo.RebuildDailyRevenue(date, s.loc.String())
}

// VisitorLogs returns one page of the visit log, newest first.
func (s *AnalyticsService) VisitorLogs(page, perPage int) (*domain.Paginated, error) {
	page, perPage = normalizePage(page, perPage)
	logs, total, err := s.logs.ListVisitorLogs(perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.VisitorLog{}
	}
	return paginate(page, perPage, total, logs), nil
}

// ActivityLogs returns one page of the business activity log, newest first.
func (s *AnalyticsService) ActivityLogs(page, perPage int) (*domain.Paginated, error) {
	page, perPage = normalizePage(page, perPage)
	logs, total, err := s.logs.ListActivityLogs(perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.ActivityLog{}
	}
	return paginate(page, perPage, total, logs), nil
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

func paginate(page, perPage, total int, results interface{}) *domain.Paginated {
	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}
	return &domain.Paginated{
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: totalPages,
		Results:    results,
	}
}
