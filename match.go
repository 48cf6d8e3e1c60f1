package authz

import "strings"

// Wildcard is the permission segment that matches any single segment on the
// other side of a comparison.
const Wildcard = "*"

// Match reports whether the held permission satisfies the required one.
// Both strings are lower-cased and split on ".". Segments are compared
// pairwise up to the length of the shorter permission; a pair matches when
// the two segments are equal or either one is the wildcard. Trailing
// segments of the longer permission are never inspected, so a shorter
// permission satisfies any longer one sharing its prefix: "users.*" matches
// "users.update.self.driver", and so does the bare "users.update". Coarse
// role grants subsume fine-grained required permissions; keep the length
// rule as is.
//
// The rule is symmetric: Match(a, b) == Match(b, a) for all inputs.
func Match(required, held string) bool {
	reqSegs := strings.Split(strings.ToLower(required), ".")
	heldSegs := strings.Split(strings.ToLower(held), ".")
	n := len(reqSegs)
	if len(heldSegs) < n {
		n = len(heldSegs)
	}
	for i := 0; i < n; i++ {
		if reqSegs[i] != heldSegs[i] && reqSegs[i] != Wildcard && heldSegs[i] != Wildcard {
			return false
		}
	}
	return true
}

// MatchAny reports whether any of the held permissions satisfies required.
func MatchAny(required string, held []string) bool {
	for _, h := range held {
		if Match(required, h) {
			return true
		}
	}
	return false
}
