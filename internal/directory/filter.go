package directory

import (
	"strings"

	"github.com/five82/roster/internal/users"
)

// NormalizeQuery lowercases q and trims surrounding whitespace.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterUsers returns the users whose lowercased name starts with the
// normalized query, in list order. An empty query returns list unchanged.
// list is never modified.
func FilterUsers(list []users.User, query string) []users.User {
	q := NormalizeQuery(query)
	if q == "" {
		return list
	}
	out := make([]users.User, 0, len(list))
	for _, u := range list {
		if strings.HasPrefix(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out
}
