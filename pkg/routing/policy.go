package routing

// AuthorizationPolicy decides what happens to a protected path. The
// historical behavior is DeferredToClient: the filter forwards every
// request and a client-held credential gates the page. Enforced moves
// that check server-side.
type AuthorizationPolicy int

const (
	// PolicyDeferredToClient forwards protected paths unconditionally
	PolicyDeferredToClient AuthorizationPolicy = iota
	// PolicyEnforced redirects unauthenticated callers off protected paths
	PolicyEnforced
)

// String returns the policy name
func (p AuthorizationPolicy) String() string {
	if p == PolicyEnforced {
		return "enforced"
	}
	return "deferred"
}

// ParsePolicy converts a configuration value into a policy. Unknown
// values fall back to DeferredToClient, matching the permissive default.
func ParsePolicy(value string) AuthorizationPolicy {
	if value == "enforced" {
		return PolicyEnforced
	}
	return PolicyDeferredToClient
}
