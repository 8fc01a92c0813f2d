package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"tablemenu/internal/domain"
	"tablemenu/internal/storage"

	"github.com/shopspring/decimal"
)

// MenuService covers category and menu item management. Every mutation takes
// the acting identity and publishes an activity event on success.
type MenuService struct {
	categories CategoryRepository
	items      MenuItemRepository
	publisher  ActivityPublisher
	store      ObjectStore
}

func NewMenuService(categories CategoryRepository, items MenuItemRepository, publisher ActivityPublisher, store ObjectStore) *MenuService {
	return &MenuService{
		categories: categories,
		items:      items,
		publisher:  publisher,
		store:      store,
	}
}

func (s *MenuService) CreateCategory(ctx context.Context, name string, actor domain.Actor) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}

	category := &domain.Category{Name: name}
	if err := s.categories.CreateCategory(category); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return category, nil
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.categories.ListCategories()
}

func (s *MenuService) UpdateCategory(ctx context.Context, id int, name string, actor domain.Actor) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}

	category := &domain.Category{ID: id, Name: name}
	if err := s.categories.UpdateCategory(category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if storage.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory cascades to the category's items.
func (s *MenuService) DeleteCategory(ctx context.Context, id int, actor domain.Actor) error {
	rows, err := s.categories.DeleteCategory(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// MenuItemInput is the write payload for menu items. Price arrives as a
// string so it never round-trips through a float.
type MenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CategoryID  int    `json:"category"`
	IsAvailable *bool  `json:"is_available"`
}

func (s *MenuService) validateItem(input MenuItemInput) (decimal.Decimal, error) {
	if strings.TrimSpace(input.Name) == "" {
		return decimal.Zero, invalid("name", "must not be empty")
	}
	if input.CategoryID <= 0 {
		return decimal.Zero, invalid("category", "must reference a category")
	}
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return decimal.Zero, invalid("price", "must be a decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, invalid("price", "must not be negative")
	}
	return price, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, input MenuItemInput, actor domain.Actor) (*domain.MenuItem, error) {
	price, err := s.validateItem(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.GetCategory(input.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalid("category", "unknown category")
		}
		return nil, err
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	item := &domain.MenuItem{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       price,
		CategoryID:  input.CategoryID,
		IsAvailable: available,
	}
	if err := s.items.CreateMenuItem(item); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.publish(ctx, domain.NewActivityEvent(domain.ActivityItemCreated, actor, map[string]string{
		"item_id":   strconv.Itoa(item.ID),
		"item_name": item.Name,
		"action":    "created",
	}))
	return s.items.GetMenuItem(item.ID)
}

func (s *MenuService) ListMenuItems() ([]domain.MenuItem, error) {
	return s.items.ListMenuItems(false)
}

func (s *MenuService) ListAvailableMenuItems() ([]domain.MenuItem, error) {
	return s.items.ListMenuItems(true)
}

func (s *MenuService) GetMenuItem(id int) (*domain.MenuItem, error) {
	item, err := s.items.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id int, input MenuItemInput, actor domain.Actor) (*domain.MenuItem, error) {
	price, err := s.validateItem(input)
	if err != nil {
		return nil, err
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	item := &domain.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       price,
		CategoryID:  input.CategoryID,
		IsAvailable: available,
	}
	if err := s.items.UpdateMenuItem(item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if storage.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.publish(ctx, domain.NewActivityEvent(domain.ActivityItemUpdated, actor, map[string]string{
		"item_id":   strconv.Itoa(item.ID),
		"item_name": item.Name,
		"action":    "updated",
	}))
	return s.items.GetMenuItem(id)
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id int, actor domain.Actor) error {
	item, err := s.items.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	rows, err := s.items.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.publish(ctx, domain.NewActivityEvent(domain.ActivityItemDeleted, actor, map[string]string{
		"item_id":   strconv.Itoa(id),
		"item_name": item.Name,
		"action":    "deleted",
	}))
	return nil
}

// UploadMenuItemImage pushes the photo to object storage and records the
// returned reference on the item.
func (s *MenuService) UploadMenuItemImage(ctx context.Context, id int, filename string, data []byte) (string, error) {
	if _, err := s.items.GetMenuItem(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	imageURL, err := s.store.Upload("item_"+strconv.Itoa(id)+"_"+filename, data)
	if err != nil {
		return "", fmt.Errorf("%w: upload image: %v", ErrDependency, err)
	}
	if err := s.items.UpdateMenuItemImage(id, imageURL); err != nil {
		return "", err
	}
	return imageURL, nil
}

func (s *MenuService) publish(ctx context.Context, event domain.ActivityEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		log.Printf("[menu] failed to publish %s event: %v", event.Type, err)
	}
}
