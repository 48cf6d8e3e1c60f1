package authz

// Role is a named bundle of permission strings and parent roles. A role is
// immutable once loaded into a Registry; inheritance is declared as a list
// of parent role IDs resolved through the registry at check time.
type Role struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Permissions []string `json:"permissions"`
	Inherits    []string `json:"inherits"`
	Assignable  bool     `json:"assignable"`
	Default     bool     `json:"default"`
}

// User is the subject of an authorization check. The registry only reads
// it, never mutates it; sourcing users is the host's job.
type User struct {
	ID    int64    `json:"id"`
	Roles []string `json:"roles"`
}
