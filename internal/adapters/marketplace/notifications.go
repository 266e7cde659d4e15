package marketplace

import (
	"context"
	"net/http"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

const notificationsPath = "/notifications"

func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	return list[model.Notification](ctx, c, request{
		op:     "notifications.list",
		method: http.MethodGet,
		path:   notificationsPath,
	})
}

func (c *Client) MarkNotificationSeen(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op:     "notifications.mark_seen",
		method: http.MethodPatch,
		path:   idPath(notificationsPath, id, "seen"),
	}, nil)
}
