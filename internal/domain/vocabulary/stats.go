package vocabulary

// Stats summarises the contents of a Store.
type Stats struct {
	Total      int            `json:"total"`
	InSRS      int            `json:"in_srs"`
	NotInSRS   int            `json:"not_in_srs"`
	ByLevel    map[string]int `json:"by_level"`
	ByCategory map[string]int `json:"by_category"` // keyed by category display name
}

// Stats counts the items in the store, overall and per level and category.
// Levels and categories with no items are omitted.
func (s *Store) Stats() Stats {
	stats := Stats{
		Total:      len(s.items),
		ByLevel:    make(map[string]int, len(s.byLevel)),
		ByCategory: make(map[string]int, len(s.byCategory)),
	}

	for _, item := range s.items {
		if item.InSRS {
			stats.InSRS++
		}
	}
	stats.NotInSRS = stats.Total - stats.InSRS

	for level, ids := range s.byLevel {
		if len(ids) > 0 {
			stats.ByLevel[level] = len(ids)
		}
	}
	for category, ids := range s.byCategory {
		if len(ids) > 0 {
			stats.ByCategory[category.DisplayName()] += len(ids)
		}
	}

	return stats
}
