package httpx

import (
	"net/http"
	"strconv"
)

// Notifications renders the drawer. Opening it marks unseen notifications
// as seen; a partial marking failure still shows the inbox.
func (h *UIHandlers) Notifications(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Notifications", PageTitle: "Notifications", CurrentPage: PageNotifications}
	inbox, err := h.NotificationSvc.Open(r.Context())
	if err != nil && inbox.Items == nil {
		h.viewFailed(w, r, err, meta)
		return
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "notifications shown with marking failure", "error", err)
	}

	data := NewTemplateData(r, meta).
		With("Notifications", inbox.Items).
		With("Unread", inbox.Unread).
		Build()
	// the drawer was opened, so the badge resets
	HTMX(w).Trigger("notifications:seen", map[string]int{"unread": inbox.Unread})
	if HXTarget(r) == "notifications-drawer" {
		h.renderFragment(w, r, "notifications-list", data)
		return
	}
	h.renderPage(w, r, data)
}

// NotificationBadge returns the unread count badge. It never fails the
// page: on error the badge is simply empty.
// GET /notifications/badge.
func (h *UIHandlers) NotificationBadge(w http.ResponseWriter, r *http.Request) {
	inbox, err := h.NotificationSvc.List(r.Context())
	if err != nil {
		if handled := h.handleCommonFailure(w, r, err); handled {
			return
		}
		h.logger().DebugContext(r.Context(), "notification badge unavailable", "error", err)
	}
	if !IsBrowserRequest(r) {
		WriteJSON(w, http.StatusOK, map[string]int{"unread": inbox.Unread})
		return
	}
	label := ""
	if inbox.Unread > 0 {
		label = strconv.Itoa(inbox.Unread)
	}
	h.renderFragment(w, r, "notification-badge", map[string]any{"Unread": inbox.Unread, "Label": label})
}
