package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tablemenu/internal/domain"
	"tablemenu/internal/mocks"
	"tablemenu/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func emptyAnalyticsExpectations(repo *mocks.AnalyticsRepository, counts domain.VisitorCounts,
	orders int, revenue decimal.Decimal,
	hourly map[int]int, dailyRevenue map[string]domain.DailyRevenuePoint, dailyVisitors map[string]int,
) {
	repo.On("VisitorCounts", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), service.EntryPages).
		Return(counts, nil).Once()
	repo.On("OrderTotals", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(orders, revenue, nil).Once()
	repo.On("PopularItems", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 10).
		Return(nil, nil).Once()
	repo.On("PopularCategories", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 10).
		Return(nil, nil).Once()
	repo.On("HourlyOrderCounts", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "UTC").
		Return(hourly, nil).Once()
	repo.On("DailyRevenueByDate", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "UTC").
		Return(dailyRevenue, nil).Once()
	repo.On("DailyVisitorsByDate", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "UTC").
		Return(dailyVisitors, nil).Once()
}

func TestAnalyticsService_Summary_ZeroFills(t *testing.T) {
	mockRepo := mocks.NewAnalyticsRepository(t)
	mockLogs := mocks.NewLogRepository(t)
	svc := service.NewAnalyticsService(mockRepo, mockLogs, nil, time.UTC)

	today := time.Now().UTC().Format("2006-01-02")
	emptyAnalyticsExpectations(mockRepo,
		domain.VisitorCounts{Total: 5, Customers: 3, Managers: 1, Anonymous: 1},
		2, decimal.RequireFromString("42.50"),
		map[int]int{13: 2},
		map[string]domain.DailyRevenuePoint{
			today: {Date: today, Revenue: decimal.RequireFromString("42.50"), OrderCount: 2},
		},
		map[string]int{today: 5},
	)

	summary, err := svc.Summary(context.Background(), 7)
	assert.NoError(t, err)

	assert.Equal(t, 7, summary.WindowDays)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, "42.50", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, 5, summary.Visitors.Total)

	// Hourly distribution always carries all 24 buckets.
	assert.Len(t, summary.Hourly, 24)
	assert.Equal(t, 13, summary.Hourly[13].Hour)
	assert.Equal(t, 2, summary.Hourly[13].OrderCount)
	assert.Equal(t, 0, summary.Hourly[0].OrderCount)

	// Daily series: exactly one entry per day, chronological, zero-filled.
	assert.Len(t, summary.DailyRevenue, 7)
	assert.Len(t, summary.DailyVisitors, 7)
	assert.Equal(t, today, summary.DailyRevenue[6].Date)
	assert.Equal(t, "42.50", summary.DailyRevenue[6].Revenue.StringFixed(2))
	for i := 0; i < 6; i++ {
		assert.True(t, summary.DailyRevenue[i].Revenue.IsZero())
		assert.Equal(t, 0, summary.DailyVisitors[i].VisitCount)
		if i > 0 {
			assert.Less(t, summary.DailyRevenue[i-1].Date, summary.DailyRevenue[i].Date)
		}
	}

	// Empty popular lists serialize as arrays, not null.
	assert.NotNil(t, summary.PopularItems)
	assert.NotNil(t, summary.PopularCats)
}

func TestAnalyticsService_Summary_DefaultWindow(t *testing.T) {
	mockRepo := mocks.NewAnalyticsRepository(t)
	mockLogs := mocks.NewLogRepository(t)
	svc := service.NewAnalyticsService(mockRepo, mockLogs, nil, time.UTC)

	emptyAnalyticsExpectations(mockRepo, domain.VisitorCounts{}, 0, decimal.Zero, nil, nil, nil)

	summary, err := svc.Summary(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, service.DefaultWindowDays, summary.WindowDays)
	assert.Len(t, summary.DailyRevenue, service.DefaultWindowDays)
}

func TestAnalyticsService_Summary_CacheHit(t *testing.T) {
	mockRepo := mocks.NewAnalyticsRepository(t)
	mockLogs := mocks.NewLogRepository(t)
	mockCache := mocks.NewSummaryCache(t)
	svc := service.NewAnalyticsService(mockRepo, mockLogs, mockCache, time.UTC)

	cached := domain.Summary{WindowDays: 7, TotalOrders: 99}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	// A hit short-circuits every repository read.
	mockCache.On("GetSummary", mock.Anything, 7).Return(payload, true).Once()

	summary, err := svc.Summary(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 99, summary.TotalOrders)
	mockRepo.AssertNotCalled(t, "OrderTotals", mock.Anything, mock.Anything)
}

func TestAnalyticsService_Summary_CacheMissStoresResult(t *testing.T) {
	mockRepo := mocks.NewAnalyticsRepository(t)
	mockLogs := mocks.NewLogRepository(t)
	mockCache := mocks.NewSummaryCache(t)
	svc := service.NewAnalyticsService(mockRepo, mockLogs, mockCache, time.UTC)

	mockCache.On("GetSummary", mock.Anything, 7).Return(nil, false).Once()
	emptyAnalyticsExpectations(mockRepo, domain.VisitorCounts{}, 0, decimal.Zero, nil, nil, nil)
	mockCache.On("SetSummary", mock.Anything, 7, mock.AnythingOfType("[]uint8")).Return(nil).Once()

	_, err := svc.Summary(context.Background(), 7)
	assert.NoError(t, err)
}

func TestAnalyticsService_RebuildDailyRevenue(t *testing.T) {
	mockRepo := mocks.NewAnalyticsRepository(t)
	mockLogs := mocks.NewLogRepository(t)
	svc := service.NewAnalyticsService(mockRepo, mockLogs, nil, time.UTC)

	rollup := &domain.DailyRevenue{
		Date:         "2026-08-01",
		TotalRevenue: decimal.RequireFromString("120.00"),
		TotalOrders:  6,
	}
	mockRepo.On("RebuildDailyRevenue", "2026-08-01", "UTC").Return(rollup, nil).Once()

	got, err := svc.RebuildDailyRevenue(context.Background(), "2026-08-01")
	assert.NoError(t, err)
	assert.Equal(t, rollup, got)

	_, err = svc.RebuildDailyRevenue(context.Background(), "01/08/2026")
	var valErr *service.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "date", valErr.Field)
}

func TestAnalyticsService_VisitorLogs_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		wantLimit      int
		wantOffset     int
		total          int
		wantTotalPages int
	}{
		{name: "defaults", page: 0, perPage: 0, wantLimit: 20, wantOffset: 0, total: 45, wantTotalPages: 3},
		{name: "second page", page: 2, perPage: 10, wantLimit: 10, wantOffset: 10, total: 45, wantTotalPages: 5},
		{name: "per_page capped", page: 1, perPage: 500, wantLimit: 20, wantOffset: 0, total: 5, wantTotalPages: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewAnalyticsRepository(t)
			mockLogs := mocks.NewLogRepository(t)
			svc := service.NewAnalyticsService(mockRepo, mockLogs, nil, time.UTC)

			mockLogs.On("ListVisitorLogs", testCase.wantLimit, testCase.wantOffset).
				Return([]domain.VisitorLog{{ID: 1}}, testCase.total, nil).Once()

			page, err := svc.VisitorLogs(testCase.page, testCase.perPage)
			assert.NoError(t, err)
			assert.Equal(t, testCase.total, page.TotalCount)
			assert.Equal(t, testCase.wantTotalPages, page.TotalPages)
		})
	}
}
