package authz

import (
	"sort"
	"strings"
)

// Values the reserved "<target>" placeholder resolves to.
const (
	TargetSelf   = "self"
	TargetOthers = "others"
)

const targetKey = "target"

// Options drives placeholder substitution in a permission template.
type Options struct {
	// TargetID identifies the subject of the action. When set, the first
	// "<target>" placeholder in every string resolves to "self" if it
	// equals the acting user's ID, "others" otherwise.
	TargetID *int64
	// Static replaces the first "<key>" occurrence with a single value.
	Static map[string]string
	// All fans the template out: each value for a key yields its own
	// required permission, applied to every string produced so far.
	All map[string][]string
}

// Target is a convenience for building Options.TargetID inline.
func Target(id int64) *int64 {
	return &id
}

// FillPermissionTemplate expands a permission template into the concrete
// permission strings an authorization check must satisfy, all of them.
// Substitution runs over the whole working set in a fixed order: target
// first, then static keys, then all-keys, map keys in sorted order so the
// fan-out is deterministic. Each substitution replaces only the first
// occurrence of its placeholder. Placeholders with no matching option stay
// in the result as literal text; they simply will not match any held
// permission.
func FillPermissionTemplate(userID int64, template string, opts Options) []string {
	perms := []string{template}

	if opts.TargetID != nil {
		target := TargetOthers
		if *opts.TargetID == userID {
			target = TargetSelf
		}
		for i, p := range perms {
			perms[i] = strings.Replace(p, placeholder(targetKey), target, 1)
		}
	}

	for _, key := range sortedKeys(opts.Static) {
		for i, p := range perms {
			perms[i] = strings.Replace(p, placeholder(key), opts.Static[key], 1)
		}
	}

	for _, key := range sortedValueKeys(opts.All) {
		values := opts.All[key]
		next := make([]string, 0, len(perms)*len(values))
		for _, p := range perms {
			for _, v := range values {
				next = append(next, strings.Replace(p, placeholder(key), v, 1))
			}
		}
		perms = next
	}

	return perms
}

func placeholder(key string) string {
	return "<" + key + ">"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedValueKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
