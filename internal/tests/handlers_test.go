package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "tablemenu/internal/api/http"
	"tablemenu/internal/domain"
	"tablemenu/internal/mocks"
	"tablemenu/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	menu      *mocks.MenuServiceInterface
	orders    *mocks.OrderServiceInterface
	qr        *mocks.QRServiceInterface
	analytics *mocks.AnalyticsServiceInterface
	auth      *mocks.AuthServiceInterface
}

func newTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		menu:      mocks.NewMenuServiceInterface(t),
		orders:    mocks.NewOrderServiceInterface(t),
		qr:        mocks.NewQRServiceInterface(t),
		analytics: mocks.NewAnalyticsServiceInterface(t),
		auth:      mocks.NewAuthServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.menu, m.orders, m.qr, m.analytics, m.auth)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestCreateOrderEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t)

		order := &domain.Order{
			ID:          1,
			TableNumber: "5",
			Status:      domain.StatusNew,
			TotalPrice:  decimal.RequireFromString("20.00"),
		}
		m.orders.On("Create", mock.Anything, "5", []domain.OrderLine{{MenuItemID: 1, Quantity: 2}}, domain.AnonymousActor).
			Return(order, nil).Once()

		payload := bytes.NewBufferString(`{"table_number":"5","items":[{"menu_item_id":1,"quantity":2}]}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/orders", payload))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got domain.Order
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.ID)
		assert.Equal(t, domain.StatusNew, got.Status)
	})

	t.Run("validation error carries field detail", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.orders.On("Create", mock.Anything, "5", mock.Anything, domain.AnonymousActor).
			Return(nil, &service.ValidationError{Field: "items", Message: "quantity must be a positive integer"}).Once()

		payload := bytes.NewBufferString(`{"table_number":"5","items":[{"menu_item_id":1,"quantity":0}]}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/orders", payload))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Detail map[string]string `json:"detail"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Detail["items"], "positive")
	})

	t.Run("malformed json", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString("{")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestManagerAuthGate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "").Return(0, false).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token threads the manager actor", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(4, true).Once()
		m.orders.On("UpdateStatus", mock.Anything, 7, domain.StatusCompleted, mock.MatchedBy(func(actor domain.Actor) bool {
			return actor.ManagerID != nil && *actor.ManagerID == 4
		})).Return(nil).Once()
		m.orders.On("Get", 7).Return(&domain.Order{ID: 7, Status: domain.StatusCompleted}, nil).Once()

		r := httptest.NewRequest("PATCH", "/api/orders/7/status", bytes.NewBufferString(`{"status":"completed"}`))
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMenuByUUIDEndpoint(t *testing.T) {
	t.Run("unknown uuid", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.qr.On("ResolveUUID", "bogus").Return(nil, service.ErrNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/menu/bogus", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("known uuid returns the table menu", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.qr.On("ResolveUUID", "abc").Return(&domain.QRCode{ID: 1, TableNumber: "7"}, nil).Once()
		m.menu.On("ListCategories").Return([]domain.Category{{ID: 1, Name: "Starters"}}, nil).Once()
		m.menu.On("ListAvailableMenuItems").Return(nil, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/menu/abc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			TableNumber string            `json:"table_number"`
			MenuItems   []domain.MenuItem `json:"menu_items"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "7", body.TableNumber)
		assert.NotNil(t, body.MenuItems)
	})
}

func TestGenerateQREndpoint(t *testing.T) {
	t.Run("conflict on duplicate table", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(1, true).Once()
		m.qr.On("Generate", mock.Anything, mock.AnythingOfType("service.QRRequest"), mock.Anything).
			Return(nil, service.ErrTableTaken).Once()

		r := httptest.NewRequest("POST", "/api/qr_codes/generate", bytes.NewBufferString(`{"table_number":"5"}`))
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(1, true).Once()
		m.qr.On("Generate", mock.Anything, mock.MatchedBy(func(req service.QRRequest) bool {
			return req.TableNumber == "5" && req.Color == "#336699"
		}), mock.Anything).Return(&domain.QRCode{
			ID: 2, UUID: "u-u-i-d", TableNumber: "5", ImageURL: "/uploads/qr_u.png",
		}, nil).Once()

		r := httptest.NewRequest("POST", "/api/qr_codes/generate",
			bytes.NewBufferString(`{"table_number":"5","qr_color":"#336699"}`))
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/uploads/qr_u.png", body["qr_code_url"])
	})
}

func TestAnalyticsSummaryEndpoint(t *testing.T) {
	t.Run("window_days out of range", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(1, true).Once()

		r := httptest.NewRequest("GET", "/api/analytics/summary?window_days=400", nil)
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(1, true).Once()
		m.analytics.On("Summary", mock.Anything, 7).Return(&domain.Summary{WindowDays: 7}, nil).Once()

		r := httptest.NewRequest("GET", "/api/analytics/summary?window_days=7", nil)
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("Login", mock.Anything, "admin", "secret", mock.AnythingOfType("string")).
			Return(&domain.Token{Key: "tok", ManagerID: 1}, &domain.Manager{ID: 1, Username: "admin"}, nil).Once()

		payload := bytes.NewBufferString(`{"username":"admin","password":"secret"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/manager/login", payload))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "tok", body["token"])
		assert.Equal(t, "admin", body["username"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("Login", mock.Anything, "admin", "wrong", mock.AnythingOfType("string")).
			Return(nil, nil, service.ErrInvalidCredentials).Once()

		payload := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/manager/login", payload))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCategoryEndpoints(t *testing.T) {
	t.Run("duplicate name conflict", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(1, true).Once()
		m.menu.On("CreateCategory", mock.Anything, "Starters", mock.Anything).
			Return(nil, service.ErrNameTaken).Once()

		r := httptest.NewRequest("POST", "/api/categories", bytes.NewBufferString(`{"name":"Starters"}`))
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("public list", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.menu.On("ListCategories").Return(nil, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("delete missing category", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.auth.On("ValidateToken", mock.Anything, "tok").Return(1, true).Once()
		m.menu.On("DeleteCategory", mock.Anything, 44, mock.Anything).Return(service.ErrNotFound).Once()

		r := httptest.NewRequest("DELETE", "/api/categories/44", nil)
		r.Header.Set("Authorization", "Token tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTrackingMiddleware(t *testing.T) {
	mockQR := mocks.NewQRRepository(t)
	mockLogs := mocks.NewLogRepository(t)
	mockValidator := mocks.NewTokenValidator(t)
	tracker := service.NewTrackingService(mockQR, mockLogs, mockValidator)

	recorded := make(chan *domain.VisitorLog, 1)
	mockLogs.On("InsertVisitorLog", mock.AnythingOfType("*domain.VisitorLog")).
		Run(func(args mock.Arguments) {
			recorded <- args.Get(0).(*domain.VisitorLog)
		}).Return(nil).Maybe()

	router := mux.NewRouter()
	router.HandleFunc("/menu", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Use(httpapi.TrackingMiddleware(tracker))

	t.Run("page request is recorded", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/menu", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		entry := <-recorded
		assert.Equal(t, domain.VisitorAnonymous, entry.VisitorType)
		assert.Equal(t, "/menu", entry.PageVisited)
	})

	t.Run("api path is skipped", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/orders", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		select {
		case entry := <-recorded:
			t.Fatalf("unexpected visitor log for %s", entry.PageVisited)
		default:
		}
	})
}
