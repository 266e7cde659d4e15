package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"student", RoleStudent, true},
		{" Organisation ", RoleOrganisation, true},
		{"ADMIN", RoleAdmin, true},
		{"guest", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestRole_HomePath(t *testing.T) {
	assert.Equal(t, "/org", RoleOrganisation.HomePath())
	assert.Equal(t, "/admin", RoleAdmin.HomePath())
	assert.Equal(t, "/", RoleStudent.HomePath())
	assert.Equal(t, "/", Role("").HomePath())
}

func TestSession_Consistent(t *testing.T) {
	id := &Identity{ID: 1, Role: RoleStudent}

	assert.True(t, Session{}.Consistent())
	assert.True(t, Session{Token: "t", Identity: id, Settled: true}.Consistent())
	assert.True(t, Session{Token: "t"}.Consistent(), "unsettled token awaiting validation")
	assert.False(t, Session{Identity: id, Settled: true}.Consistent(), "identity without token")
	assert.False(t, Session{Token: "t", Settled: true}.Consistent(), "settled token without identity")
}

func TestSession_Cleared(t *testing.T) {
	s := Session{ID: "abc", Token: "t", Identity: &Identity{ID: 1}, Seq: 4, ValidatedAt: time.Now()}
	c := s.Cleared()

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, uint64(4), c.Seq)
	assert.False(t, c.TokenPresent())
	assert.Nil(t, c.Identity)
	assert.True(t, c.Settled)
	assert.True(t, c.ValidatedAt.IsZero())
	assert.True(t, c.Consistent())
	assert.NotNil(t, s.Identity, "original must be untouched")
}

func TestSession_NeedsValidation(t *testing.T) {
	now := time.Now()
	validated := Session{Token: "t", Identity: &Identity{ID: 1}, Settled: true, ValidatedAt: now.Add(-time.Minute)}

	assert.True(t, Session{}.NeedsValidation(now, time.Minute), "unsettled anonymous session settles once")
	assert.False(t, Session{Settled: true}.NeedsValidation(now, time.Minute))
	assert.True(t, Session{Token: "t"}.NeedsValidation(now, time.Minute))
	assert.False(t, validated.NeedsValidation(now, 5*time.Minute))
	assert.True(t, validated.NeedsValidation(now, 30*time.Second))
	assert.False(t, validated.NeedsValidation(now, 0), "zero max age never revalidates")
}
