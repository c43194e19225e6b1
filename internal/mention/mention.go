package mention

import (
	"strings"
)

// Parse splits a comma-separated mention string into trimmed, non-empty tokens.
// Tokens are not validated and duplicates are kept.
func Parse(raw string) []string {
	tokens := make([]string, 0)
	if raw == "" {
		return tokens
	}

	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		tokens = append(tokens, piece)
	}

	return tokens
}

// UserID extracts the numeric user id from <@id>, <@!id> or a bare id.
func UserID(token string) (string, bool) {
	id := strings.TrimSpace(token)
	if strings.HasPrefix(id, "<@") && strings.HasSuffix(id, ">") {
		id = strings.TrimSuffix(strings.TrimPrefix(id, "<@"), ">")
		id = strings.TrimPrefix(id, "!")
	}

	if id == "" {
		return "", false
	}

	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	return id, true
}

func PingLine(tokens []string, sep string) string {
	return strings.Join(tokens, sep)
}
