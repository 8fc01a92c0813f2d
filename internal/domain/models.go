package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Listing excludes archived orders.
const (
	StatusNew        = "new"
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusArchived   = "archived"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusArchived:
		return true
	}
	return false
}

// Visitor classifications, derived per request by the tracking middleware.
const (
	VisitorAnonymous = "anonymous"
	VisitorCustomer  = "customer"
	VisitorManager   = "manager"
)

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"category"`
	Category    *Category       `json:"category_details,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Order struct {
	ID          int             `json:"id"`
	TableNumber string          `json:"table_number"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem freezes the menu item price at order time.
type OrderItem struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"-"`
	MenuItemID   int             `json:"menu_item"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
}

// OrderLine is one entry in an inbound cart submission.
type OrderLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type QRCode struct {
	ID          int       `json:"id"`
	UUID        string    `json:"uuid"`
	TableNumber string    `json:"table_number"`
	QRColor     string    `json:"qr_color"`
	ImageURL    string    `json:"qr_code_url"`
	LogoURL     string    `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type VisitorLog struct {
	ID          int       `json:"id"`
	VisitorType string    `json:"visitor_type"`
	SessionID   string    `json:"session_id,omitempty"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	Referrer    string    `json:"referrer,omitempty"`
	PageVisited string    `json:"page_visited"`
	TableNumber string    `json:"table_number,omitempty"`
	QRCodeID    *int      `json:"qr_code,omitempty"`
	Duration    float64   `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}

type ActivityLog struct {
	ID           int               `json:"id"`
	ActivityType string            `json:"activity_type"`
	ManagerID    *int              `json:"user,omitempty"`
	Details      map[string]string `json:"details"`
	CreatedAt    time.Time         `json:"created_at"`
}

// DailyRevenue is a rollup cache derived from completed orders; it can be
// rebuilt for any date by replaying the order store.
type DailyRevenue struct {
	Date          string          `json:"date"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int             `json:"total_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

type Manager struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Token struct {
	Key       string    `json:"token"`
	ManagerID int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
