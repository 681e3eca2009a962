package domain

import (
	"encoding/json"
	"strconv"
)

// Repository is a read-only view of one entry of a GitHub search response.
// It is derived from the published JSON value for display; the value itself
// is never modified.
type Repository struct {
	// Name is full_name when present, otherwise name.
	Name string

	// URL is the html_url of the repository.
	URL string

	// Description is the repository description, possibly empty.
	Description string

	// Language is the primary language, possibly empty.
	Language string

	// Stars is stargazers_count, zero when absent.
	Stars int64
}

// RepositoriesFrom projects the items array of a search response.
// Values that are not objects with an items array yield nil.
func RepositoriesFrom(value any) []Repository {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	items, ok := obj["items"].([]any)
	if !ok {
		return nil
	}

	repos := make([]Repository, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := stringField(fields, "full_name")
		if name == "" {
			name = stringField(fields, "name")
		}
		repos = append(repos, Repository{
			Name:        name,
			URL:         stringField(fields, "html_url"),
			Description: stringField(fields, "description"),
			Language:    stringField(fields, "language"),
			Stars:       intField(fields, "stargazers_count"),
		})
	}
	return repos
}

// TotalCount returns total_count of a search response, or -1 when absent.
func TotalCount(value any) int64 {
	obj, ok := value.(map[string]any)
	if !ok {
		return -1
	}
	if _, ok := obj["total_count"]; !ok {
		return -1
	}
	return intField(obj, "total_count")
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
