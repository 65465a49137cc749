package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"foodigo/internal/auth"
	"foodigo/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Accounts  service.AccountServiceInterface
	Catalog   service.CatalogServiceInterface
	Cart      service.CartServiceInterface
	Favorites service.FavoritesServiceInterface
	Orders    service.OrderServiceInterface
	Schedules service.ScheduleServiceInterface
	Reviews   service.ReviewServiceInterface
	Messages  service.MessageServiceInterface
	Auth      *auth.Middleware
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/user/register", h.register).Methods("POST")
	api.HandleFunc("/user/login", h.login).Methods("POST")
	api.HandleFunc("/user/admin_login", h.adminLogin).Methods("POST")

	api.Handle("/food/add", h.admin(h.addFood)).Methods("POST")
	api.HandleFunc("/food/list", h.listFoods).Methods("GET")
	api.Handle("/food/remove", h.admin(h.removeFood)).Methods("POST")
	api.Handle("/food/update_stock", h.admin(h.updateStock)).Methods("POST")
	api.Handle("/food/update_details", h.admin(h.updateFoodDetails)).Methods("POST")
	api.Handle("/food/lowstock", h.admin(h.lowStock)).Methods("GET")

	api.Handle("/category/add", h.admin(h.addCategory)).Methods("POST")
	api.HandleFunc("/category/list", h.listCategories).Methods("GET")
	api.Handle("/category/update", h.admin(h.updateCategory)).Methods("POST")
	api.Handle("/category/remove", h.admin(h.removeCategory)).Methods("POST")

	api.Handle("/cart/add", h.user(h.addToCart)).Methods("POST")
	api.Handle("/cart/remove", h.user(h.removeFromCart)).Methods("POST")
	api.Handle("/cart/get", h.user(h.getCart)).Methods("POST")

	api.Handle("/favorites/toggle", h.user(h.toggleFavorite)).Methods("POST")
	api.Handle("/favorites/get", h.user(h.getFavorites)).Methods("POST")

	api.Handle("/order/place", h.user(h.placeOrder)).Methods("POST")
	api.HandleFunc("/order/verify", h.verifyOrder).Methods("POST")
	api.Handle("/order/userorders", h.user(h.userOrders)).Methods("POST")
	api.Handle("/order/list", h.admin(h.listOrders)).Methods("POST")
	api.Handle("/order/status", h.admin(h.updateStatus)).Methods("POST")
	api.Handle("/order/status/override", h.admin(h.overrideStatus)).Methods("POST")
	api.Handle("/order/newcount", h.admin(h.newOrderCount)).Methods("GET")
	api.Handle("/order/markseen", h.anyRole(h.markOrderSeen)).Methods("POST")
	api.Handle("/order/remove/{orderId}", h.user(h.cancelOrder)).Methods("DELETE")
	api.Handle("/order/admin/remove/{orderId}", h.admin(h.adminRemoveOrder)).Methods("DELETE")
	api.HandleFunc("/order/{id}/qrcode", h.orderQRCode).Methods("GET")

	api.Handle("/schedule/create", h.user(h.createSchedule)).Methods("POST")
	api.Handle("/schedule/list", h.user(h.userSchedules)).Methods("GET")
	api.Handle("/schedule/update/{id}", h.user(h.updateSchedule)).Methods("PUT")
	api.Handle("/schedule/toggle/{id}", h.user(h.toggleSchedule)).Methods("PUT")
	api.Handle("/schedule/delete/{id}", h.user(h.deleteSchedule)).Methods("DELETE")
	api.HandleFunc("/schedule/top-selling", h.topSelling).Methods("GET")
	api.Handle("/schedule/adminlist", h.admin(h.adminSchedules)).Methods("GET")
	api.Handle("/schedule/admin/toggle/{id}", h.admin(h.adminToggleSchedule)).Methods("PUT")
	api.Handle("/schedule/admin/delete/{id}", h.admin(h.adminDeleteSchedule)).Methods("DELETE")

	api.Handle("/review/add", h.user(h.addReview)).Methods("POST")
	api.HandleFunc("/review/list/{foodId}", h.listReviews).Methods("GET")
	api.HandleFunc("/review/stats/{foodId}", h.reviewStats).Methods("GET")

	api.Handle("/message/send", h.Auth.Optional(http.HandlerFunc(h.sendMessage))).Methods("POST")
	api.Handle("/message/user", h.user(h.userMessages)).Methods("GET")
	api.Handle("/message/list", h.admin(h.listMessages)).Methods("GET")
	api.Handle("/message/newcount", h.admin(h.unreadMessageCount)).Methods("GET")
	api.Handle("/message/markread", h.admin(h.markMessageRead)).Methods("POST")
	api.Handle("/message/reply", h.admin(h.replyMessage)).Methods("POST")
	api.Handle("/message/{id}", h.admin(h.deleteMessage)).Methods("DELETE")
}

func (h *Handler) user(f http.HandlerFunc) http.Handler { return h.Auth.RequireUser(f) }
func (h *Handler) admin(f http.HandlerFunc) http.Handler { return h.Auth.RequireAdmin(f) }
func (h *Handler) anyRole(f http.HandlerFunc) http.Handler { return h.Auth.RequireAny(f) }

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "foodigo",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// identity is only called behind the auth middleware.
func identity(r *http.Request) auth.Identity {
	id, _ := auth.FromContext(r.Context())
	return id
}

func decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, fields map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func badBody(w http.ResponseWriter) {
	fail(w, http.StatusBadRequest, "Invalid request body")
}

// writeError maps service errors onto status codes. Unexpected errors are logged
// and answered with fallback.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var validation *service.ValidationError
	switch {
	case errors.Is(err, service.ErrDuplicateReview):
		fail(w, http.StatusConflict, err.Error())
	case errors.As(err, &validation):
		fail(w, http.StatusBadRequest, validation.Message)
	case errors.Is(err, service.ErrNotFound):
		fail(w, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Printf("[store-svc] %s: %v", fallback, err)
		fail(w, http.StatusInternalServerError, fallback)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
