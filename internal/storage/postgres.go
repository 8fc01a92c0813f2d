package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"tablemenu/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate table number, category or item name, QR uuid).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			image_url TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			table_number VARCHAR(50) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'new',
			total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			price_at_order NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS qr_codes (
			id SERIAL PRIMARY KEY,
			uuid UUID UNIQUE NOT NULL,
			table_number VARCHAR(50) UNIQUE NOT NULL,
			qr_color VARCHAR(7) NOT NULL DEFAULT '#000000',
			image_url TEXT NOT NULL,
			logo_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS visitor_logs (
			id SERIAL PRIMARY KEY,
			visitor_type VARCHAR(20) NOT NULL,
			session_id VARCHAR(100),
			ip_address VARCHAR(45),
			user_agent TEXT,
			referrer TEXT,
			page_visited TEXT NOT NULL,
			table_number VARCHAR(50),
			qr_code_id INTEGER REFERENCES qr_codes(id) ON DELETE SET NULL,
			duration DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS managers (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tokens (
			key VARCHAR(64) PRIMARY KEY,
			manager_id INTEGER NOT NULL REFERENCES managers(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS activity_logs (
			id SERIAL PRIMARY KEY,
			activity_type VARCHAR(50) NOT NULL,
			manager_id INTEGER REFERENCES managers(id) ON DELETE SET NULL,
			details JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS daily_revenue (
			date DATE PRIMARY KEY,
			total_revenue NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_orders INTEGER NOT NULL DEFAULT 0,
			avg_order_value NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateCategory(category *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at",
		category.Name,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query("SELECT id, name, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var category domain.Category
	err := r.DB.QueryRow("SELECT id, name, created_at FROM categories WHERE id = $1", id).
		Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) UpdateCategory(category *domain.Category) error {
	return r.DB.QueryRow(
		"UPDATE categories SET name = $1 WHERE id = $2 RETURNING created_at",
		category.Name, category.ID,
	).Scan(&category.CreatedAt)
}

// DeleteCategory cascades to the category's menu items.
func (r *PostgresRepository) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const menuItemColumns = `
	mi.id, mi.name, mi.description, mi.price, mi.category_id,
	COALESCE(mi.image_url, ''), mi.is_available, mi.created_at,
	c.id, c.name, c.created_at`

func scanMenuItem(row interface{ Scan(...interface{}) error }) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var category domain.Category
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.CategoryID,
		&item.ImageURL, &item.IsAvailable, &item.CreatedAt,
		&category.ID, &category.Name, &category.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Category = &category
	return &item, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, category_id, image_url, is_available)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at`,
		item.Name, item.Description, item.Price, item.CategoryID, item.ImageURL, item.IsAvailable,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(onlyAvailable bool) ([]domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items mi
		JOIN categories c ON mi.category_id = c.id`
	if onlyAvailable {
		query += " WHERE mi.is_available"
	}
	query += " ORDER BY mi.name"

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	row := r.DB.QueryRow(`
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON mi.category_id = c.id
		WHERE mi.id = $1`, id)
	return scanMenuItem(row)
}

// GetAvailableMenuItem returns the item only if it is currently orderable.
func (r *PostgresRepository) GetAvailableMenuItem(id int) (*domain.MenuItem, error) {
	row := r.DB.QueryRow(`
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON mi.category_id = c.id
		WHERE mi.id = $1 AND mi.is_available`, id)
	return scanMenuItem(row)
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category_id = $4, is_available = $5
		WHERE id = $6
		RETURNING created_at`,
		item.Name, item.Description, item.Price, item.CategoryID, item.IsAvailable, item.ID,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) UpdateMenuItemImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE menu_items SET image_url = $1 WHERE id = $2", imageURL, id)
	return err
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreateOrder commits the order header and all of its lines in one
// transaction; a failed line insert rolls the whole order back.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (table_number, status, total_price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, order.TableNumber, order.Status, order.TotalPrice).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, price_at_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, order.ID, item.MenuItemID, item.Quantity, item.PriceAtOrder).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, table_number, status, total_price, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.TableNumber, &order.Status, &order.TotalPrice, &order.CreatedAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.id, oi.menu_item_id, mi.name, oi.quantity, oi.price_at_order
		FROM order_items oi
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return &order, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.MenuItemName, &item.Quantity, &item.PriceAtOrder); err != nil {
			continue
		}
		item.OrderID = order.ID
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

// ListOrders excludes archived orders and sorts actionable statuses first.
func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, table_number, status, total_price, created_at
		FROM orders
		WHERE status <> 'archived'
		ORDER BY
			CASE status
				WHEN 'new' THEN 1
				WHEN 'in_progress' THEN 2
				WHEN 'pending' THEN 3
				WHEN 'cancelled' THEN 4
				WHEN 'completed' THEN 5
				ELSE 6
			END,
			created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.TableNumber, &order.Status, &order.TotalPrice, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateQRCode(qr *domain.QRCode) error {
	return r.DB.QueryRow(`
		INSERT INTO qr_codes (uuid, table_number, qr_color, image_url, logo_url)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at
	`, qr.UUID, qr.TableNumber, qr.QRColor, qr.ImageURL, qr.LogoURL).Scan(&qr.ID, &qr.CreatedAt)
}

func (r *PostgresRepository) GetQRCodeByUUID(uuid string) (*domain.QRCode, error) {
	var qr domain.QRCode
	err := r.DB.QueryRow(`
		SELECT id, uuid, table_number, qr_color, image_url, COALESCE(logo_url, ''), created_at
		FROM qr_codes WHERE uuid = $1
	`, uuid).Scan(&qr.ID, &qr.UUID, &qr.TableNumber, &qr.QRColor, &qr.ImageURL, &qr.LogoURL, &qr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

func (r *PostgresRepository) ListQRCodes() ([]domain.QRCode, error) {
	rows, err := r.DB.Query(`
		SELECT id, uuid, table_number, qr_color, image_url, COALESCE(logo_url, ''), created_at
		FROM qr_codes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []domain.QRCode
	for rows.Next() {
		var qr domain.QRCode
		if err := rows.Scan(&qr.ID, &qr.UUID, &qr.TableNumber, &qr.QRColor, &qr.ImageURL, &qr.LogoURL, &qr.CreatedAt); err != nil {
			continue
		}
		codes = append(codes, qr)
	}
	return codes, nil
}
