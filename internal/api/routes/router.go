package routes

import (
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/api/handlers"
	"github.com/zatekoja/healthapp/backend/internal/api/middleware"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/observability"
)

// Handlers groups the route handlers
type Handlers struct {
	Cart        *handlers.CartHandler
	Orders      *handlers.OrderHandler
	Insurance   *handlers.InsuranceHandler
	Appointment *handlers.AppointmentHandler
	Analytics   *handlers.AnalyticsHandler
	Records     *handlers.RecordsHandler
	Location    *handlers.LocationHandler
	Catalog     *handlers.CatalogHandler
	Profile     *handlers.ProfileHandler
}

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	handlers Handlers

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware may be nil.
func NewRouter(
	h Handlers,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		handlers:        h,
		cacheMiddleware: cacheMiddleware,
		allowedOrigins:  allowedOrigins,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Cart
	r.mux.HandleFunc("GET /api/cart", r.handlers.Cart.GetCart)
	r.mux.HandleFunc("POST /api/cart/items", r.handlers.Cart.AddItem)
	r.mux.HandleFunc("PATCH /api/cart/items/{id}", r.handlers.Cart.UpdateQuantity)
	r.mux.HandleFunc("DELETE /api/cart/items/{id}", r.handlers.Cart.RemoveItem)

	// Orders, insurance and appointments
	r.mux.HandleFunc("GET /api/orders", r.handlers.Orders.ListOrders)
	r.mux.HandleFunc("GET /api/insurance", r.handlers.Insurance.GetOverview)
	r.mux.HandleFunc("GET /api/appointments", r.handlers.Appointment.ListAppointments)

	// Analytics
	r.mux.HandleFunc("GET /api/analytics", r.handlers.Analytics.GetDashboard)

	// Health records
	r.mux.HandleFunc("GET /api/documents", r.handlers.Records.ListDocuments)
	r.mux.HandleFunc("POST /api/documents", r.handlers.Records.UploadDocument)

	// Delivery locations
	r.mux.HandleFunc("GET /api/locations", r.handlers.Location.SearchLocations)

	// Catalogue
	r.mux.HandleFunc("GET /api/languages", r.handlers.Catalog.SearchLanguages)
	r.mux.HandleFunc("GET /api/lab-packages", r.handlers.Catalog.ListLabPackages)
	r.mux.HandleFunc("GET /api/products/{id}", r.handlers.Catalog.GetProduct)
	r.mux.HandleFunc("GET /api/subscriptions", r.handlers.Catalog.ListSubscriptions)
	r.mux.HandleFunc("GET /api/subscriptions/{id}", r.handlers.Catalog.GetSubscription)

	// Profile
	r.mux.HandleFunc("GET /api/profile", r.handlers.Profile.GetProfile)
	r.mux.HandleFunc("PUT /api/profile/card", r.handlers.Profile.UpdatePersonalDetails)
	r.mux.HandleFunc("PUT /api/profile/emergency-contact", r.handlers.Profile.UpdateEmergencyContact)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
