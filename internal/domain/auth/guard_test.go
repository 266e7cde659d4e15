package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Pending(t *testing.T) {
	s := Session{Token: "t", Identity: &Identity{Role: RoleAdmin}}
	assert.Equal(t, DecisionPending, Evaluate(s, Roles(RoleAdmin)))
	assert.Equal(t, DecisionPending, Evaluate(Session{}, Roles(RoleStudent)))
}

func TestEvaluate_AllRoleCombinations(t *testing.T) {
	all := []Role{RoleStudent, RoleOrganisation, RoleAdmin}
	sets := []RoleSet{
		Roles(),
		Roles(RoleStudent),
		Roles(RoleOrganisation),
		Roles(RoleAdmin),
		Roles(RoleStudent, RoleOrganisation),
		Roles(RoleOrganisation, RoleAdmin),
		Roles(all...),
	}

	for _, role := range all {
		for _, allowed := range sets {
			t.Run(fmt.Sprintf("%s in %v", role, allowed), func(t *testing.T) {
				s := Session{Token: "tok", Identity: &Identity{ID: 1, Role: role}, Settled: true}
				want := DecisionRedirect
				if allowed.Contains(role) {
					want = DecisionAllow
				}
				assert.Equal(t, want, Evaluate(s, allowed))
			})
		}
	}
}

func TestEvaluate_LogoutRevokesLikeNeverLoggedIn(t *testing.T) {
	allowed := Roles(RoleStudent)
	live := Session{ID: "s", Token: "tok", Identity: &Identity{ID: 7, Role: RoleStudent}, Settled: true}
	assert.Equal(t, DecisionAllow, Evaluate(live, allowed))

	loggedOut := live.Cleared()
	neverIn := Session{ID: "s", Settled: true}
	assert.Equal(t, DecisionRedirect, Evaluate(loggedOut, allowed))
	assert.Equal(t, Evaluate(neverIn, allowed), Evaluate(loggedOut, allowed))
}

func TestEvaluate_IdentityWithoutTokenIsNotTrusted(t *testing.T) {
	s := Session{Identity: &Identity{Role: RoleAdmin}, Settled: true}
	assert.Equal(t, DecisionRedirect, Evaluate(s, Roles(RoleAdmin)))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "pending", DecisionPending.String())
	assert.Equal(t, "redirect", DecisionRedirect.String())
	assert.Equal(t, "allow", DecisionAllow.String())
}
