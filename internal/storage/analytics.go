package storage

import (
	"time"

	"tablemenu/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// VisitorCounts returns total visits in the window split by classification.
// Customer visits only count on entry pages so incidental page loads do not
// inflate the customer figure.
func (r *PostgresRepository) VisitorCounts(start, end time.Time, entryPages []string) (domain.VisitorCounts, error) {
	var counts domain.VisitorCounts
	err := r.DB.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE visitor_type = 'anonymous'),
			COUNT(*) FILTER (WHERE visitor_type = 'customer' AND page_visited = ANY($3)),
			COUNT(*) FILTER (WHERE visitor_type = 'manager')
		FROM visitor_logs
		WHERE created_at >= $1 AND created_at < $2
	`, start, end, pq.Array(entryPages)).Scan(
		&counts.Total, &counts.Anonymous, &counts.Customers, &counts.Managers)
	return counts, err
}

// OrderTotals returns the completed-order count and summed stored totals for
// the window. Revenue comes from the frozen order totals, never live prices.
func (r *PostgresRepository) OrderTotals(start, end time.Time) (int, decimal.Decimal, error) {
	var total int
	var revenue decimal.Decimal
	err := r.DB.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE status = 'completed' AND created_at >= $1 AND created_at < $2
	`, start, end).Scan(&total, &revenue)
	return total, revenue, err
}

// PopularItems ranks items by quantity sold across completed orders in the
// window. Ties break on item name so output is deterministic.
func (r *PostgresRepository) PopularItems(start, end time.Time, limit int) ([]domain.PopularItem, error) {
	rows, err := r.DB.Query(`
		SELECT mi.id, mi.name,
		       COUNT(DISTINCT o.id),
		       SUM(oi.quantity),
		       SUM(oi.quantity * oi.price_at_order)
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE o.status = 'completed' AND o.created_at >= $1 AND o.created_at < $2
		GROUP BY mi.id, mi.name
		ORDER BY SUM(oi.quantity) DESC, mi.name ASC
		LIMIT $3
	`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PopularItem
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.OrderCount, &item.QuantitySold, &item.Revenue); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// PopularCategories rolls the same aggregation up by category, ranked by
// revenue with a name tie-break.
func (r *PostgresRepository) PopularCategories(start, end time.Time, limit int) ([]domain.PopularCategory, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.name,
		       COUNT(DISTINCT o.id),
		       SUM(oi.quantity * oi.price_at_order)
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		JOIN categories c ON mi.category_id = c.id
		WHERE o.status = 'completed' AND o.created_at >= $1 AND o.created_at < $2
		GROUP BY c.id, c.name
		ORDER BY SUM(oi.quantity * oi.price_at_order) DESC, c.name ASC
		LIMIT $3
	`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.PopularCategory
	for rows.Next() {
		var category domain.PopularCategory
		if err := rows.Scan(&category.CategoryID, &category.Name, &category.OrderCount, &category.Revenue); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// HourlyOrderCounts buckets completed orders by hour of day in the given
// timezone. Only hours with orders are returned; the caller zero-fills.
func (r *PostgresRepository) HourlyOrderCounts(start, end time.Time, tz string) (map[int]int, error) {
	rows, err := r.DB.Query(`
		SELECT EXTRACT(HOUR FROM created_at AT TIME ZONE $3)::int, COUNT(*)
		FROM orders
		WHERE status = 'completed' AND created_at >= $1 AND created_at < $2
		GROUP BY 1
	`, start, end, tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make(map[int]int)
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, err
		}
		buckets[hour] = count
	}
	return buckets, rows.Err()
}

// DailyRevenueByDate returns per-day completed-order revenue and counts keyed
// by local calendar date (YYYY-MM-DD). Sparse; the caller zero-fills.
func (r *PostgresRepository) DailyRevenueByDate(start, end time.Time, tz string) (map[string]domain.DailyRevenuePoint, error) {
	rows, err := r.DB.Query(`
		SELECT to_char(created_at AT TIME ZONE $3, 'YYYY-MM-DD'),
		       COALESCE(SUM(total_price), 0), COUNT(*)
		FROM orders
		WHERE status = 'completed' AND created_at >= $1 AND created_at < $2
		GROUP BY 1
	`, start, end, tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make(map[string]domain.DailyRevenuePoint)
	for rows.Next() {
		var point domain.DailyRevenuePoint
		if err := rows.Scan(&point.Date, &point.Revenue, &point.OrderCount); err != nil {
			return nil, err
		}
		points[point.Date] = point
	}
	return points, rows.Err()
}

// DailyVisitorsByDate returns per-day visit counts keyed by local calendar
// date. Sparse; the caller zero-fills.
func (r *PostgresRepository) DailyVisitorsByDate(start, end time.Time, tz string) (map[string]int, error) {
	rows, err := r.DB.Query(`
		SELECT to_char(created_at AT TIME ZONE $3, 'YYYY-MM-DD'), COUNT(*)
		FROM visitor_logs
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY 1
	`, start, end, tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, err
		}
		counts[date] = count
	}
	return counts, rows.Err()
}

// RebuildDailyRevenue replays the order store for one local calendar date and
// upserts the rollup row, so the cache table is always derivable.
func (r *PostgresRepository) RebuildDailyRevenue(date string, tz string) (*domain.DailyRevenue, error) {
	var rollup domain.DailyRevenue
	err := r.DB.QueryRow(`
		INSERT INTO daily_revenue (date, total_revenue, total_orders, avg_order_value)
		SELECT $1::date,
		       COALESCE(SUM(total_price), 0),
		       COUNT(*),
		       CASE WHEN COUNT(*) = 0 THEN 0 ELSE ROUND(COALESCE(SUM(total_price), 0) / COUNT(*), 2) END
		FROM orders
		WHERE status = 'completed'
		  AND to_char(created_at AT TIME ZONE $2, 'YYYY-MM-DD') = $1
		ON CONFLICT (date) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			total_orders = EXCLUDED.total_orders,
			avg_order_value = EXCLUDED.avg_order_value
		RETURNING to_char(date, 'YYYY-MM-DD'), total_revenue, total_orders, avg_order_value
	`, date, tz).Scan(&rollup.Date, &rollup.TotalRevenue, &rollup.TotalOrders, &rollup.AvgOrderValue)
	if err != nil {
		return nil, err
	}
	return &rollup, nil
}
