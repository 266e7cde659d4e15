//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifications_SortAndCount(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	seen := base
	ns := []Notification{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(2 * time.Hour), SeenAt: &seen},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
	}

	SortNewestFirst(ns)
	assert.Equal(t, []int64{2, 3, 1}, []int64{ns[0].ID, ns[1].ID, ns[2].ID})
	assert.Equal(t, 2, UnreadCount(ns))
	assert.Equal(t, []int64{3, 1}, UnseenIDs(ns))
}
