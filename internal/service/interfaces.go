package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablemenu/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrTableTaken         = errors.New("table number already has a QR code")
	ErrNameTaken          = errors.New("name is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDependency         = errors.New("external dependency failure")
)

// ValidationError reports malformed input with field-level detail. Requests
// failing validation are rejected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

type CategoryRepository interface {
	CreateCategory(category *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(category *domain.Category) error
	DeleteCategory(id int) (int64, error)
}

type MenuItemRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(onlyAvailable bool) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	GetAvailableMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	UpdateMenuItemImage(id int, imageURL string) error
	DeleteMenuItem(id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(orderID int, status string) (int64, error)
}

type QRRepository interface {
	CreateQRCode(qr *domain.QRCode) error
	GetQRCodeByUUID(uuid string) (*domain.QRCode, error)
	ListQRCodes() ([]domain.QRCode, error)
}

type LogRepository interface {
	InsertVisitorLog(entry *domain.VisitorLog) error
	ListVisitorLogs(limit, offset int) ([]domain.VisitorLog, int, error)
	InsertActivityLog(entry *domain.ActivityLog) error
	ListActivityLogs(limit, offset int) ([]domain.ActivityLog, int, error)
}

type AuthRepository interface {
	CreateManager(manager *domain.Manager) error
	GetManagerByUsername(username string) (*domain.Manager, error)
	InsertToken(token *domain.Token) error
	GetToken(key string) (*domain.Token, error)
	DeleteToken(key string) (int64, error)
}

type AnalyticsRepository interface {
	VisitorCounts(start, end time.Time, entryPages []string) (domain.VisitorCounts, error)
	OrderTotals(start, end time.Time) (int, decimal.Decimal, error)
	PopularItems(start, end time.Time, limit int) ([]domain.PopularItem, error)
	PopularCategories(start, end time.Time, limit int) ([]domain.PopularCategory, error)
	HourlyOrderCounts(start, end time.Time, tz string) (map[int]int, error)
	DailyRevenueByDate(start, end time.Time, tz string) (map[string]domain.DailyRevenuePoint, error)
	DailyVisitorsByDate(start, end time.Time, tz string) (map[string]int, error)
	RebuildDailyRevenue(date string, tz string) (*domain.DailyRevenue, error)
}

// ActivityPublisher hands domain events to the activity dispatcher. Mutation
// paths publish; they never write activity log rows themselves.
type ActivityPublisher interface {
	PublishActivity(ctx context.Context, event domain.ActivityEvent) error
}

type TokenCache interface {
	GetCachedToken(ctx context.Context, key string) (int, bool)
	CacheToken(ctx context.Context, key string, managerID int) error
	DropToken(ctx context.Context, key string) error
}

type SummaryCache interface {
	GetSummary(ctx context.Context, windowDays int) ([]byte, bool)
	SetSummary(ctx context.Context, windowDays int, payload []byte) error
}

// ObjectStore accepts raw image bytes and returns a durable reference.
type ObjectStore interface {
	Upload(name string, data []byte) (string, error)
}

type MenuServiceInterface interface {
	CreateCategory(ctx context.Context, name string, actor domain.Actor) (*domain.Category, error)
	ListCategories() ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id int, name string, actor domain.Actor) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int, actor domain.Actor) error
	CreateMenuItem(ctx context.Context, input MenuItemInput, actor domain.Actor) (*domain.MenuItem, error)
	ListMenuItems() ([]domain.MenuItem, error)
	ListAvailableMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, input MenuItemInput, actor domain.Actor) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int, actor domain.Actor) error
	UploadMenuItemImage(ctx context.Context, id int, filename string, data []byte) (string, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, tableNumber string, lines []domain.OrderLine, actor domain.Actor) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	List() ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string, actor domain.Actor) error
}

type QRServiceInterface interface {
	Generate(ctx context.Context, req QRRequest, actor domain.Actor) (*domain.QRCode, error)
	List() ([]domain.QRCode, error)
	ResolveUUID(tableUUID string) (*domain.QRCode, error)
}

type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, windowDays int) (*domain.Summary, error)
	RebuildDailyRevenue(ctx context.Context, date string) (*domain.DailyRevenue, error)
	VisitorLogs(page, perPage int) (*domain.Paginated, error)
	ActivityLogs(page, perPage int) (*domain.Paginated, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password, ip string) (*domain.Token, *domain.Manager, error)
	Logout(ctx context.Context, key, ip string) error
	ValidateToken(ctx context.Context, key string) (int, bool)
}

var (
	_ MenuServiceInterface      = (*MenuService)(nil)
	_ OrderServiceInterface     = (*OrderService)(nil)
	_ QRServiceInterface        = (*QRService)(nil)
	_ AnalyticsServiceInterface = (*AnalyticsService)(nil)
	_ AuthServiceInterface      = (*AuthService)(nil)
	_ TokenValidator            = (*AuthService)(nil)
)
