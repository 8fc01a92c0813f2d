package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"
	"strings"

	"tablemenu/internal/domain"

	"github.com/shopspring/decimal"
)

// OrderService turns cart submissions into priced, persisted orders.
type OrderService struct {
	orders    OrderRepository
	items     MenuItemRepository
	publisher ActivityPublisher

	// rejectEmpty rejects carts whose every line was dropped instead of
	// creating a zero-total order.
	rejectEmpty bool
}

func NewOrderService(orders OrderRepository, items MenuItemRepository, publisher ActivityPublisher, rejectEmpty bool) *OrderService {
	return &OrderService{
		orders:      orders,
		items:       items,
		publisher:   publisher,
		rejectEmpty: rejectEmpty,
	}
}

// Create validates the cart, snapshots current prices and commits the order
// atomically. Unknown or unavailable items are dropped per line; a
// non-positive quantity rejects the whole request before any write.
func (s *OrderService) Create(ctx context.Context, tableNumber string, lines []domain.OrderLine, actor domain.Actor) (*domain.Order, error) {
	if strings.TrimSpace(tableNumber) == "" {
		return nil, invalid("table_number", "must not be empty")
	}
	if len(lines) == 0 {
		return nil, invalid("items", "must not be empty")
	}
	for _, line := range lines {
		if line.MenuItemID <= 0 {
			return nil, invalid("items", "each item must have a menu_item_id")
		}
		if line.Quantity < 1 {
			return nil, invalid("items", "quantity must be a positive integer")
		}
	}

	order := &domain.Order{
		TableNumber: tableNumber,
		Status:      domain.StatusNew,
		TotalPrice:  decimal.Zero,
	}

	for _, line := range lines {
		item, err := s.items.GetAvailableMenuItem(line.MenuItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Unknown or unavailable item: drop the line so one
				// stale cart entry does not reject the whole order.
				continue
			}
			return nil, err
		}

		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Quantity:     line.Quantity,
			PriceAtOrder: item.Price,
		})
		order.TotalPrice = order.TotalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	if len(order.Items) == 0 && s.rejectEmpty {
		return nil, invalid("items", "no orderable items in cart")
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewActivityEvent(domain.ActivityOrderPlaced, actor, map[string]string{
		"order_id":     strconv.Itoa(order.ID),
		"table_number": order.TableNumber,
		"total_amount": order.TotalPrice.StringFixed(2),
	}))
	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.orders.ListOrders()
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string, actor domain.Actor) error {
	if !domain.ValidStatus(status) {
		return invalid("status", "unknown order status")
	}
	rows, err := s.orders.UpdateOrderStatus(orderID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) publish(ctx context.Context, event domain.ActivityEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		log.Printf("[order] failed to publish %s event: %v", event.Type, err)
	}
}
