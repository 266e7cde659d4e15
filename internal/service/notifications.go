package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/ports"
)

const markSeenConcurrency = 4

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	API    ports.NotificationAPI
	Logger *slog.Logger
	Now    func() time.Time
}

// NotificationService backs the notifications drawer. Notifications are
// fetched on demand; there is no push channel.
type NotificationService struct {
	api    ports.NotificationAPI
	logger *slog.Logger
	now    func() time.Time
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &NotificationService{api: opts.API, logger: logger.With("component", "notification_service"), now: now}
}

// Inbox is the drawer content.
type Inbox struct {
	Items  []model.Notification
	Unread int
}

// List returns the notifications newest first with the unread count.
func (s *NotificationService) List(ctx context.Context) (Inbox, error) {
	items, err := s.api.ListNotifications(ctx)
	if err != nil {
		return Inbox{}, err
	}
	items = slices.Clone(items)
	model.SortNewestFirst(items)
	return Inbox{Items: items, Unread: model.UnreadCount(items)}, nil
}

// Open lists the notifications and marks every unseen one as seen. Marks run
// concurrently; the first failure is returned alongside the inbox, in which
// only successfully marked notifications show as seen.
func (s *NotificationService) Open(ctx context.Context) (Inbox, error) {
	inbox, err := s.List(ctx)
	if err != nil {
		return Inbox{}, err
	}
	ids := model.UnseenIDs(inbox.Items)
	if len(ids) == 0 {
		return inbox, nil
	}

	var (
		mu     sync.Mutex
		marked = make(map[int64]bool, len(ids))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(markSeenConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			if err := s.api.MarkNotificationSeen(gctx, id); err != nil {
				return err
			}
			mu.Lock()
			marked[id] = true
			mu.Unlock()
			return nil
		})
	}
	markErr := g.Wait()
	if markErr != nil {
		s.logger.WarnContext(ctx, "failed to mark notifications seen", "count", len(ids), "error", markErr)
	}

	seenAt := s.now()
	for i := range inbox.Items {
		if marked[inbox.Items[i].ID] {
			inbox.Items[i].SeenAt = &seenAt
		}
	}
	inbox.Unread = model.UnreadCount(inbox.Items)
	return inbox, markErr
}
