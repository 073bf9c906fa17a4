package logic

import (
	"strings"
	"unicode/utf8"

	"usersearch/internal/domain"
)

// FilterByName returns the users whose name contains query as a
// case-insensitive substring, in their original order. An empty query
// matches nothing.
func FilterByName(users []domain.User, query string) []domain.User {
	if query == "" {
		return []domain.User{}
	}

	lowerQuery := strings.ToLower(query)
	matches := make([]domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), lowerQuery) {
			matches = append(matches, u)
		}
	}
	return matches
}

// Limit caps users at n entries; n <= 0 means no cap
func Limit(users []domain.User, n int) []domain.User {
	if n <= 0 || len(users) <= n {
		return users
	}
	return users[:n]
}

// Segment is a piece of a name, either matching the query or not
type Segment struct {
	Text  string
	Match bool
}

// SplitMatch splits name into alternating segments around every
// non-overlapping case-insensitive occurrence of query. The query is treated
// as literal text.
func SplitMatch(name, query string) []Segment {
	if name == "" {
		return nil
	}
	queryLen := utf8.RuneCountInString(query)
	if queryLen == 0 {
		return []Segment{{Text: name}}
	}

	runes := []rune(name)
	var segments []Segment
	plainStart := 0
	for i := 0; i+queryLen <= len(runes); {
		candidate := string(runes[i : i+queryLen])
		if !strings.EqualFold(candidate, query) {
			i++
			continue
		}
		if plainStart < i {
			segments = append(segments, Segment{Text: string(runes[plainStart:i])})
		}
		segments = append(segments, Segment{Text: candidate, Match: true})
		i += queryLen
		plainStart = i
	}
	if plainStart < len(runes) {
		segments = append(segments, Segment{Text: string(runes[plainStart:])})
	}
	return segments
}
