package permission

import "strings"

type Gate struct {
	allowed map[string]struct{}
}

func NewGate(allowed []string) *Gate {
	set := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = struct{}{}
		}
	}

	return &Gate{allowed: set}
}

// Allowed reports whether any of the invoker's roles is on the allow-list.
func (g *Gate) Allowed(roles []string) bool {
	for _, id := range roles {
		if _, ok := g.allowed[id]; ok {
			return true
		}
	}

	return false
}
