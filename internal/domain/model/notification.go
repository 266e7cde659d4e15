//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"sort"
	"time"
)

// Notification is a message addressed to the current user.
type Notification struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SeenAt      *time.Time `json:"seenAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Seen reports whether the notification has been marked as seen.
func (n Notification) Seen() bool { return n.SeenAt != nil }

// SortNewestFirst orders notifications by creation time, newest first.
func SortNewestFirst(ns []Notification) {
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].CreatedAt.After(ns[j].CreatedAt) })
}

// UnreadCount counts notifications not yet seen.
func UnreadCount(ns []Notification) int {
	n := 0
	for _, x := range ns {
		if !x.Seen() {
			n++
		}
	}
	return n
}

// UnseenIDs lists the ids of notifications not yet seen.
func UnseenIDs(ns []Notification) []int64 {
	var ids []int64
	for _, x := range ns {
		if !x.Seen() {
			ids = append(ids, x.ID)
		}
	}
	return ids
}
