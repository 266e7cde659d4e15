package auth

// Decision is the outcome of evaluating a view's role requirement.
type Decision int

const (
	// DecisionPending means the session is not settled yet; render a neutral loading state.
	DecisionPending Decision = iota
	// DecisionRedirect means the view must not render; send the browser to login.
	DecisionRedirect
	// DecisionAllow means the view may render.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirect:
		return "redirect"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Evaluate decides whether a view guarded by allowed may render for the session.
// A missing identity and a role outside the set are treated the same way.
func Evaluate(s Session, allowed RoleSet) Decision {
	if !s.Settled {
		return DecisionPending
	}
	if !s.IsAuthenticated() || !allowed.Contains(s.Identity.Role) {
		return DecisionRedirect
	}
	return DecisionAllow
}
