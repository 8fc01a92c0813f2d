package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tablemenu/internal/domain"
	"tablemenu/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu      service.MenuServiceInterface
	Orders    service.OrderServiceInterface
	QR        service.QRServiceInterface
	Analytics service.AnalyticsServiceInterface
	Auth      service.AuthServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, orders service.OrderServiceInterface,
	qr service.QRServiceInterface, analytics service.AnalyticsServiceInterface,
	auth service.AuthServiceInterface,
) *Handler {
	return &Handler{
		Menu:      menu,
		Orders:    orders,
		QR:        qr,
		Analytics: analytics,
		Auth:      auth,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Public menu pages (tracked as entry pages).
	r.HandleFunc("/", h.menuList).Methods("GET")
	r.HandleFunc("/menu", h.menuList).Methods("GET")

	r.HandleFunc("/api/menu", h.menuList).Methods("GET")
	r.HandleFunc("/api/menu/{uuid}", h.menuByUUID).Methods("GET")

	r.HandleFunc("/api/manager/login", h.managerLogin).Methods("POST")
	r.HandleFunc("/api/manager/logout", h.requireManager(h.managerLogout)).Methods("POST")

	r.HandleFunc("/api/categories", h.requireManager(h.createCategory)).Methods("POST")
	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.requireManager(h.updateCategory)).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", h.requireManager(h.deleteCategory)).Methods("DELETE")

	r.HandleFunc("/api/menu_items", h.requireManager(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu_items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu_items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu_items/{id}", h.requireManager(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu_items/{id}", h.requireManager(h.deleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/menu_items/{id}/image", h.requireManager(h.uploadMenuItemImage)).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.requireManager(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.requireManager(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.requireManager(h.updateOrderStatus)).Methods("PATCH")

	r.HandleFunc("/api/qr_codes", h.requireManager(h.listQRCodes)).Methods("GET")
	r.HandleFunc("/api/qr_codes/generate", h.requireManager(h.generateQRCode)).Methods("POST")

	r.HandleFunc("/api/analytics/summary", h.requireManager(h.analyticsSummary)).Methods("GET")
	r.HandleFunc("/api/analytics/visitors", h.requireManager(h.visitorLogs)).Methods("GET")
	r.HandleFunc("/api/analytics/activities", h.requireManager(h.activityLogs)).Methods("GET")
	r.HandleFunc("/api/analytics/daily_revenue/rebuild", h.requireManager(h.rebuildDailyRevenue)).Methods("POST")
}

type actorKey struct{}

// requireManager gates a handler on a valid manager token and threads the
// manager actor into the request context.
func (h *Handler) requireManager(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		managerID, ok := h.Auth.ValidateToken(r.Context(), tokenFromRequest(r))
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ctx := withActor(r.Context(), domain.ManagerActor(managerID))
		next(w, r.WithContext(ctx))
	}
}

func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Token ") {
		return strings.TrimPrefix(auth, "Token ")
	}
	if cookie, err := r.Cookie("manager_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "tablemenu",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) menuList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.Menu.ListAvailableMenuItems()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": emptyIfNilCategories(categories),
		"menu_items": emptyIfNilItems(items),
	})
}

func (h *Handler) menuByUUID(w http.ResponseWriter, r *http.Request) {
	qr, err := h.QR.ResolveUUID(mux.Vars(r)["uuid"])
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "Invalid QR code")
			return
		}
		writeError(w, err)
		return
	}

	categories, err := h.Menu.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.Menu.ListAvailableMenuItems()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"table_number": qr.TableNumber,
		"categories":   emptyIfNilCategories(categories),
		"menu_items":   emptyIfNilItems(items),
	})
}

func (h *Handler) managerLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	token, manager, err := h.Auth.Login(r.Context(), payload.Username, payload.Password, clientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":    token.Key,
		"user_id":  manager.ID,
		"username": manager.Username,
	})
}

func (h *Handler) managerLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), tokenFromRequest(r), clientIP(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "logged out"})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	category, err := h.Menu.CreateCategory(r.Context(), payload.Name, actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNilCategories(categories))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	category, err := h.Menu.UpdateCategory(r.Context(), id, payload.Name, actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.DeleteCategory(r.Context(), id, actorFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var input service.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	item, err := h.Menu.CreateMenuItem(r.Context(), input, actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListMenuItems()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNilItems(items))
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.GetMenuItem(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var input service.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	item, err := h.Menu.UpdateMenuItem(r.Context(), id, input, actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.DeleteMenuItem(r.Context(), id, actorFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSONError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Error retrieving the file")
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedTypes[header.Header.Get("Content-Type")] {
		writeJSONError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, WebP allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	imageURL, err := h.Menu.UploadMenuItemImage(r.Context(), id, header.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableNumber string             `json:"table_number"`
		Items       []domain.OrderLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.Create(r.Context(), payload.TableNumber, payload.Items, actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Orders.UpdateStatus(r.Context(), id, payload.Status, actorFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.QR.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if codes == nil {
		codes = []domain.QRCode{}
	}
	writeJSON(w, http.StatusOK, codes)
}

// generateQRCode accepts either JSON (table_number, qr_color, logo_url) or a
// multipart form with an inline logo file.
func (h *Handler) generateQRCode(w http.ResponseWriter, r *http.Request) {
	var req service.QRRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(service.MaxLogoBytes * 2); err != nil {
			writeJSONError(w, http.StatusBadRequest, "File too large")
			return
		}
		req.TableNumber = r.FormValue("table_number")
		req.Color = r.FormValue("qr_color")
		req.LogoURL = r.FormValue("logo_url")

		if file, header, err := r.FormFile("logo"); err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(io.LimitReader(file, service.MaxLogoBytes+1))
			if readErr != nil {
				writeJSONError(w, http.StatusBadRequest, "Failed to read logo")
				return
			}
			req.LogoBytes = data
			req.LogoContentType = header.Header.Get("Content-Type")
		}
	} else {
		var payload struct {
			TableNumber string `json:"table_number"`
			QRColor     string `json:"qr_color"`
			LogoURL     string `json:"logo_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
			return
		}
		req.TableNumber = payload.TableNumber
		req.Color = payload.QRColor
		req.LogoURL = payload.LogoURL
	}

	qr, err := h.QR.Generate(r.Context(), req, actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, qr)
}

func (h *Handler) analyticsSummary(w http.ResponseWriter, r *http.Request) {
	windowDays := 0
	if raw := r.URL.Query().Get("window_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			writeJSONError(w, http.StatusBadRequest, "window_days must be between 1 and 365")
			return
		}
		windowDays = parsed
	}

	summary, err := h.Analytics.Summary(r.Context(), windowDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) visitorLogs(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	result, err := h.Analytics.VisitorLogs(page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) activityLogs(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	result, err := h.Analytics.ActivityLogs(page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) rebuildDailyRevenue(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	rollup, err := h.Analytics.RebuildDailyRevenue(r.Context(), payload.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rollup)
}

func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}

func emptyIfNilCategories(categories []domain.Category) []domain.Category {
	if categories == nil {
		return []domain.Category{}
	}
	return categories
}

func emptyIfNilItems(items []domain.MenuItem) []domain.MenuItem {
	if items == nil {
		return []domain.MenuItem{}
	}
	return items
}
