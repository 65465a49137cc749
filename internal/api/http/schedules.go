package httpapi

import (
	"net/http"
	"time"

	"foodigo/internal/domain"
	"foodigo/internal/service"

	"github.com/gorilla/mux"
)

type createScheduleRequest struct {
	Items             []domain.OrderItem `json:"items"`
	Address           domain.Address     `json:"address"`
	DeliveryTimestamp time.Time          `json:"deliveryTimestamp"`
	RecurrenceRule    string             `json:"recurrenceRule"`
	PaymentMethodID   string             `json:"paymentMethodId"`
	UpdateCutoffHours int                `json:"updateCutoffHours"`
}

type updateScheduleRequest struct {
	Items             []domain.OrderItem `json:"items"`
	DeliveryTimestamp *time.Time         `json:"deliveryTimestamp"`
	RecurrenceRule    *string            `json:"recurrenceRule"`
}

type toggleScheduleRequest struct {
	IsActive bool `json:"isActive"`
}

func (h *Handler) createSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	schedule, err := h.Schedules.Create(r.Context(), identity(r).ID, service.ScheduleInput{
		Items:             req.Items,
		Address:           req.Address,
		DeliveryTimestamp: req.DeliveryTimestamp,
		RecurrenceRule:    req.RecurrenceRule,
		PaymentMethodID:   req.PaymentMethodID,
		UpdateCutoffHours: req.UpdateCutoffHours,
	})
	if err != nil {
		writeError(w, err, "Failed to schedule order.")
		return
	}
	ok(w, map[string]interface{}{
		"message":    "Order scheduled successfully!",
		"scheduleId": schedule.ID,
	})
}

func (h *Handler) userSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Schedules.ListForUser(r.Context(), identity(r).ID)
	if err != nil {
		writeError(w, err, "Failed to retrieve schedules.")
		return
	}
	ok(w, map[string]interface{}{"data": schedules})
}

func (h *Handler) updateSchedule(w http.ResponseWriter, r *http.Request) {
	var req updateScheduleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	schedule, err := h.Schedules.Update(r.Context(), identity(r).ID, mux.Vars(r)["id"], service.ScheduleUpdate{
		Items:             req.Items,
		DeliveryTimestamp: req.DeliveryTimestamp,
		RecurrenceRule:    req.RecurrenceRule,
	})
	if err != nil {
		writeError(w, err, "Server error")
		return
	}
	ok(w, map[string]interface{}{"message": "Schedule updated successfully", "data": schedule})
}

func toggleMessage(active bool) string {
	if active {
		return "Schedule resumed successfully."
	}
	return "Schedule paused successfully."
}

func (h *Handler) toggleSchedule(w http.ResponseWriter, r *http.Request) {
	var req toggleScheduleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Schedules.Toggle(r.Context(), identity(r).ID, mux.Vars(r)["id"], req.IsActive); err != nil {
		writeError(w, err, "Failed to toggle schedule status.")
		return
	}
	ok(w, map[string]interface{}{"message": toggleMessage(req.IsActive)})
}

func (h *Handler) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.Schedules.Delete(r.Context(), identity(r).ID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Server error")
		return
	}
	ok(w, map[string]interface{}{"message": "Schedule deleted successfully"})
}

func (h *Handler) topSelling(w http.ResponseWriter, r *http.Request) {
	items, err := h.Schedules.TopSelling(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch top selling items")
		return
	}
	ok(w, map[string]interface{}{"data": items})
}

func (h *Handler) adminSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Schedules.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to retrieve all schedules for admin.")
		return
	}
	ok(w, map[string]interface{}{"data": schedules})
}

func (h *Handler) adminToggleSchedule(w http.ResponseWriter, r *http.Request) {
	var req toggleScheduleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Schedules.AdminToggle(r.Context(), mux.Vars(r)["id"], req.IsActive); err != nil {
		writeError(w, err, "Failed to toggle schedule status.")
		return
	}
	ok(w, map[string]interface{}{"message": toggleMessage(req.IsActive)})
}

func (h *Handler) adminDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.Schedules.AdminDelete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Server error")
		return
	}
	ok(w, map[string]interface{}{"message": "Schedule deleted successfully"})
}
