package httpapi

import (
	"net/http"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type itemRequest struct {
	ItemID string `json:"itemId"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	token, err := h.Accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"token": token})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	token, err := h.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"token": token})
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	token, err := h.Accounts.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, "Server error during login.")
		return
	}
	ok(w, map[string]interface{}{"token": token})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	cart, err := h.Cart.Add(r.Context(), identity(r).ID, req.ItemID)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"message": "Added To Cart", "cartData": cart})
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	cart, err := h.Cart.Remove(r.Context(), identity(r).ID, req.ItemID)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"message": "Removed From Cart", "cartData": cart})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.Get(r.Context(), identity(r).ID)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"cartData": cart})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	action, err := h.Favorites.Toggle(r.Context(), identity(r).ID, req.ItemID)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"action": action})
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Favorites.Get(r.Context(), identity(r).ID)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"favorites": favorites})
}
