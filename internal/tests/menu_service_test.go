package tests

import (
	"context"
	"database/sql"
	"testing"

	"tablemenu/internal/domain"
	"tablemenu/internal/mocks"
	"tablemenu/internal/service"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func boolPtr(v bool) *bool { return &v }

func TestMenuService_CreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		repoErr  error
		skipRepo bool
		wantErr  error
		wantName string
	}{
		{name: "created", input: "Starters", wantName: "Starters"},
		{name: "trims whitespace", input: "  Mains  ", wantName: "Mains"},
		{name: "blank name", input: "   ", skipRepo: true},
		{name: "duplicate name", input: "Starters", repoErr: &pq.Error{Code: "23505"}, wantErr: service.ErrNameTaken},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockCategories := mocks.NewCategoryRepository(t)
			mockItems := mocks.NewMenuItemRepository(t)
			svc := service.NewMenuService(mockCategories, mockItems, nil, nil)

			if !testCase.skipRepo {
				mockCategories.On("CreateCategory", mock.MatchedBy(func(category *domain.Category) bool {
					return category.Name == testCase.wantName || testCase.repoErr != nil
				})).Return(testCase.repoErr).Once()
			}

			category, err := svc.CreateCategory(context.Background(), testCase.input, domain.ManagerActor(1))

			switch {
			case testCase.skipRepo:
				var valErr *service.ValidationError
				assert.ErrorAs(t, err, &valErr)
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			default:
				assert.NoError(t, err)
				assert.Equal(t, testCase.wantName, category.Name)
			}
		})
	}
}

func TestMenuService_CreateMenuItem(t *testing.T) {
	validInput := service.MenuItemInput{Name: "Soup", Price: "4.50", CategoryID: 1}

	t.Run("success publishes item_created", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		mockPublisher := mocks.NewActivityPublisher(t)
		svc := service.NewMenuService(mockCategories, mockItems, mockPublisher, nil)

		mockCategories.On("GetCategory", 1).Return(&domain.Category{ID: 1, Name: "Starters"}, nil).Once()
		mockItems.On("CreateMenuItem", mock.AnythingOfType("*domain.MenuItem")).
			Run(func(args mock.Arguments) {
				args.Get(0).(*domain.MenuItem).ID = 5
			}).Return(nil).Once()
		mockItems.On("GetMenuItem", 5).Return(&domain.MenuItem{ID: 5, Name: "Soup"}, nil).Once()
		mockPublisher.On("PublishActivity", mock.Anything, mock.MatchedBy(func(event domain.ActivityEvent) bool {
			return event.Type == domain.ActivityItemCreated && event.Details["item_id"] == "5"
		})).Return(nil).Once()

		item, err := svc.CreateMenuItem(context.Background(), validInput, domain.ManagerActor(1))
		assert.NoError(t, err)
		assert.Equal(t, 5, item.ID)
	})

	t.Run("defaults to available", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		svc := service.NewMenuService(mockCategories, mockItems, nil, nil)

		mockCategories.On("GetCategory", 1).Return(&domain.Category{ID: 1}, nil).Once()
		mockItems.On("CreateMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.IsAvailable
		})).Return(nil).Once()
		mockItems.On("GetMenuItem", 0).Return(&domain.MenuItem{}, nil).Once()

		_, err := svc.CreateMenuItem(context.Background(), validInput, domain.ManagerActor(1))
		assert.NoError(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		svc := service.NewMenuService(mockCategories, mockItems, nil, nil)

		mockCategories.On("GetCategory", 9).Return(nil, sql.ErrNoRows).Once()

		input := validInput
		input.CategoryID = 9
		_, err := svc.CreateMenuItem(context.Background(), input, domain.ManagerActor(1))

		var valErr *service.ValidationError
		assert.ErrorAs(t, err, &valErr)
		assert.Equal(t, "category", valErr.Field)
	})

	t.Run("price validation", func(t *testing.T) {
		badPrices := []string{"", "abc", "-1.00", "1,50"}
		for _, price := range badPrices {
			mockCategories := mocks.NewCategoryRepository(t)
			mockItems := mocks.NewMenuItemRepository(t)
			svc := service.NewMenuService(mockCategories, mockItems, nil, nil)

			input := validInput
			input.Price = price
			_, err := svc.CreateMenuItem(context.Background(), input, domain.ManagerActor(1))

			var valErr *service.ValidationError
			assert.ErrorAs(t, err, &valErr, "price %q", price)
			assert.Equal(t, "price", valErr.Field)
		}
	})
}

func TestMenuService_UpdateMenuItem_Unavailable(t *testing.T) {
	mockCategories := mocks.NewCategoryRepository(t)
	mockItems := mocks.NewMenuItemRepository(t)
	mockPublisher := mocks.NewActivityPublisher(t)
	svc := service.NewMenuService(mockCategories, mockItems, mockPublisher, nil)

	mockItems.On("UpdateMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.ID == 3 && !item.IsAvailable
	})).Return(nil).Once()
	mockItems.On("GetMenuItem", 3).Return(&domain.MenuItem{ID: 3, Name: "Soup", IsAvailable: false}, nil).Once()
	mockPublisher.On("PublishActivity", mock.Anything, mock.MatchedBy(func(event domain.ActivityEvent) bool {
		return event.Type == domain.ActivityItemUpdated
	})).Return(nil).Once()

	item, err := svc.UpdateMenuItem(context.Background(), 3, service.MenuItemInput{
		Name:        "Soup",
		Price:       "4.50",
		CategoryID:  1,
		IsAvailable: boolPtr(false),
	}, domain.ManagerActor(1))

	assert.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestMenuService_DeleteMenuItem(t *testing.T) {
	t.Run("publishes with the removed item's name", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		mockPublisher := mocks.NewActivityPublisher(t)
		svc := service.NewMenuService(mockCategories, mockItems, mockPublisher, nil)

		mockItems.On("GetMenuItem", 3).Return(&domain.MenuItem{ID: 3, Name: "Soup"}, nil).Once()
		mockItems.On("DeleteMenuItem", 3).Return(int64(1), nil).Once()
		mockPublisher.On("PublishActivity", mock.Anything, mock.MatchedBy(func(event domain.ActivityEvent) bool {
			return event.Type == domain.ActivityItemDeleted && event.Details["item_name"] == "Soup"
		})).Return(nil).Once()

		assert.NoError(t, svc.DeleteMenuItem(context.Background(), 3, domain.ManagerActor(1)))
	})

	t.Run("missing item", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		svc := service.NewMenuService(mockCategories, mockItems, nil, nil)

		mockItems.On("GetMenuItem", 404).Return(nil, sql.ErrNoRows).Once()

		assert.ErrorIs(t, svc.DeleteMenuItem(context.Background(), 404, domain.ManagerActor(1)), service.ErrNotFound)
	})
}

func TestMenuService_UploadMenuItemImage(t *testing.T) {
	t.Run("stores and records the reference", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		mockStore := mocks.NewObjectStore(t)
		svc := service.NewMenuService(mockCategories, mockItems, nil, mockStore)

		mockItems.On("GetMenuItem", 3).Return(&domain.MenuItem{ID: 3}, nil).Once()
		mockStore.On("Upload", "item_3_photo.jpg", []byte("data")).Return("/uploads/item_3_photo.jpg", nil).Once()
		mockItems.On("UpdateMenuItemImage", 3, "/uploads/item_3_photo.jpg").Return(nil).Once()

		url, err := svc.UploadMenuItemImage(context.Background(), 3, "photo.jpg", []byte("data"))
		assert.NoError(t, err)
		assert.Equal(t, "/uploads/item_3_photo.jpg", url)
	})

	t.Run("store failure maps to dependency error", func(t *testing.T) {
		mockCategories := mocks.NewCategoryRepository(t)
		mockItems := mocks.NewMenuItemRepository(t)
		mockStore := mocks.NewObjectStore(t)
		svc := service.NewMenuService(mockCategories, mockItems, nil, mockStore)

		mockItems.On("GetMenuItem", 3).Return(&domain.MenuItem{ID: 3}, nil).Once()
		mockStore.On("Upload", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

		_, err := svc.UploadMenuItemImage(context.Background(), 3, "photo.jpg", []byte("data"))
		assert.ErrorIs(t, err, service.ErrDependency)
	})
}
