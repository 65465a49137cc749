package httpapi

import (
	"net/http"

	"foodigo/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := decode(r, &review); err != nil {
		badBody(w)
		return
	}
	review.UserID = identity(r).ID

	if err := h.Reviews.Add(r.Context(), &review); err != nil {
		writeError(w, err, "Error adding review")
		return
	}
	ok(w, map[string]interface{}{"message": "Review added successfully", "data": review})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.List(r.Context(), mux.Vars(r)["foodId"])
	if err != nil {
		writeError(w, err, "Error fetching reviews")
		return
	}
	ok(w, map[string]interface{}{"data": reviews})
}

func (h *Handler) reviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reviews.Stats(r.Context(), mux.Vars(r)["foodId"])
	if err != nil {
		writeError(w, err, "Error fetching review stats")
		return
	}
	ok(w, map[string]interface{}{"data": stats})
}
