package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters for a transcript search.
// It decouples the raw command input from the actual index engine requirements.
type Query struct {
	RawInput string // The original input from the user
	Terms    string // The actual text to search in Bluge
	Language string // Optional ISO 639-1 filter on the detected language
	Limit    int    // Number of results
}

// Match is one search hit pointing back at a journaled run.
type Match struct {
	RunID      string
	OutputPath string
	At         string
	Score      float64
}

// NewSearchQuery parses a raw string to extract command-line style arguments.
// Example: invoice overdue --lang en --limit 5
func NewSearchQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // Default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --lang en or --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "lang":
				query.Language = val
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a flag, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
