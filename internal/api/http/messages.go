package httpapi

import (
	"net/http"

	"foodigo/internal/auth"
	"foodigo/internal/domain"

	"github.com/gorilla/mux"
)

type messageIDRequest struct {
	MessageID string `json:"messageId"`
	ReplyText string `json:"replyText"`
}

// sendMessage accepts guests; a signed-in user's id is attached to the message.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var message domain.Message
	if err := decode(r, &message); err != nil {
		badBody(w)
		return
	}
	message.UserID = ""
	if id, found := auth.FromContext(r.Context()); found && id.Role == auth.RoleUser {
		message.UserID = id.ID
	}

	if err := h.Messages.Send(r.Context(), &message); err != nil {
		writeError(w, err, "Server error. Could not save message.")
		return
	}
	ok(w, map[string]interface{}{"message": "Message sent successfully."})
}

func (h *Handler) userMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.ListForUser(r.Context(), identity(r).ID)
	if err != nil {
		writeError(w, err, "Server error fetching history.")
		return
	}
	ok(w, map[string]interface{}{"data": messages})
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.List(r.Context())
	if err != nil {
		writeError(w, err, "Server error fetching messages.")
		return
	}
	ok(w, map[string]interface{}{"data": messages})
}

func (h *Handler) unreadMessageCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Messages.CountUnread(r.Context())
	if err != nil {
		writeError(w, err, "Server error fetching count.")
		return
	}
	ok(w, map[string]interface{}{"count": count})
}

func (h *Handler) markMessageRead(w http.ResponseWriter, r *http.Request) {
	var req messageIDRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Messages.MarkRead(r.Context(), req.MessageID); err != nil {
		writeError(w, err, "Server error.")
		return
	}
	ok(w, map[string]interface{}{"message": "Message marked as read."})
}

func (h *Handler) replyMessage(w http.ResponseWriter, r *http.Request) {
	var req messageIDRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Messages.Reply(r.Context(), identity(r).ID, req.MessageID, req.ReplyText); err != nil {
		writeError(w, err, "Server error sending reply.")
		return
	}
	ok(w, map[string]interface{}{"message": "Reply sent successfully."})
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Server error.")
		return
	}
	ok(w, map[string]interface{}{"message": "Message deleted."})
}
