package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"foodigo/internal/domain"

	"github.com/gorilla/mux"
)

// flexBool accepts both true and "true", as the checkout redirect page posts
// the query flag back as a string.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = flexBool(v)
	case string:
		*b = flexBool(v == "true")
	default:
		*b = false
	}
	return nil
}

type placeOrderRequest struct {
	Items   []domain.OrderItem `json:"items"`
	Address domain.Address     `json:"address"`
}

type verifyOrderRequest struct {
	OrderID string   `json:"orderId"`
	Success flexBool `json:"success"`
}

type orderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	url, err := h.Orders.Place(r.Context(), identity(r).ID, req.Items, req.Address)
	if err != nil {
		writeError(w, err, "Error placing order")
		return
	}
	ok(w, map[string]interface{}{"session_url": url})
}

func (h *Handler) verifyOrder(w http.ResponseWriter, r *http.Request) {
	var req verifyOrderRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	receipt, err := h.Orders.Verify(r.Context(), req.OrderID, bool(req.Success))
	if err != nil {
		writeError(w, err, "Internal server error")
		return
	}
	if receipt == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Payment failed, order deleted",
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+receipt.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(receipt.PDF)))
	w.WriteHeader(http.StatusOK)
	w.Write(receipt.PDF)
}

func (h *Handler) userOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForUser(r.Context(), identity(r).ID)
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"data": orders})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"data": orders})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Orders.UpdateStatus(r.Context(), req.OrderID, domain.OrderStatus(req.Status)); err != nil {
		writeError(w, err, "Failed")
		return
	}
	ok(w, map[string]interface{}{"message": "Status Updated"})
}

// overrideStatus writes any status string. It exists for console repairs and
// bypasses the lifecycle checks.
func (h *Handler) overrideStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Orders.OverrideStatus(r.Context(), req.OrderID, req.Status); err != nil {
		writeError(w, err, "Failed")
		return
	}
	ok(w, map[string]interface{}{"message": "Status Updated"})
}

func (h *Handler) newOrderCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Orders.CountNew(r.Context())
	if err != nil {
		writeError(w, err, "Error fetching count")
		return
	}
	ok(w, map[string]interface{}{"count": count})
}

func (h *Handler) markOrderSeen(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	order, err := h.Orders.MarkSeen(r.Context(), req.OrderID)
	if err != nil {
		writeError(w, err, "Internal server error.")
		return
	}
	ok(w, map[string]interface{}{"message": "Order marked as seen.", "data": order})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	decision, err := h.Orders.Cancel(r.Context(), identity(r).ID, mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err, "Internal server error")
		return
	}
	message := "Order removed successfully"
	if decision == domain.CancelWithRefund {
		message = "Order cancelled successfully"
	}
	ok(w, map[string]interface{}{"message": message})
}

func (h *Handler) adminRemoveOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.AdminRemove(r.Context(), mux.Vars(r)["orderId"]); err != nil {
		writeError(w, err, "Internal server error")
		return
	}
	ok(w, map[string]interface{}{"message": "Order removed successfully"})
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
