package httpapi

import (
	"net/http"

	"tablemenu/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter assembles the full HTTP surface: API routes, uploaded media, and
// the visitor tracking layer, wrapped with permissive CORS for the frontend.
func NewRouter(h *Handler, tracker *service.TrackingService, uploadDir string) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Use(TrackingMiddleware(tracker))

	return cors.Default().Handler(r)
}
