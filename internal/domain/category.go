package domain

// Category groups questions under a display label
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap returns the id -> type mapping sent to clients
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
