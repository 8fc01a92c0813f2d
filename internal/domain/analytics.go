package domain

import "github.com/shopspring/decimal"

type VisitorCounts struct {
	Total     int `json:"total"`
	Anonymous int `json:"anonymous"`
	Customers int `json:"customers"`
	Managers  int `json:"managers"`
}

type PopularItem struct {
	MenuItemID   int             `json:"menu_item_id"`
	Name         string          `json:"name"`
	OrderCount   int             `json:"order_count"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type PopularCategory struct {
	CategoryID int             `json:"category_id"`
	Name       string          `json:"name"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type HourBucket struct {
	Hour       int `json:"hour"`
	OrderCount int `json:"order_count"`
}

type DailyRevenuePoint struct {
	Date       string          `json:"date"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

type DailyVisitorPoint struct {
	Date       string `json:"date"`
	VisitCount int    `json:"visit_count"`
}

// Summary is the fixed-shape analytics payload for a trailing window.
// Hourly always has 24 buckets; the daily series always has one entry per
// calendar day in the window, zero-filled.
type Summary struct {
	WindowDays    int                 `json:"window_days"`
	Visitors      VisitorCounts       `json:"visitors"`
	TotalOrders   int                 `json:"total_orders"`
	TotalRevenue  decimal.Decimal     `json:"total_revenue"`
	PopularItems  []PopularItem       `json:"popular_items"`
	PopularCats   []PopularCategory   `json:"popular_categories"`
	Hourly        []HourBucket        `json:"hourly_distribution"`
	DailyRevenue  []DailyRevenuePoint `json:"daily_revenue"`
	DailyVisitors []DailyVisitorPoint `json:"daily_visitors"`
}

// Paginated is the envelope for offset-paginated log listings.
type Paginated struct {
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalCount int         `json:"total_count"`
	TotalPages int         `json:"total_pages"`
	Results    interface{} `json:"results"`
}
