package pagination

// TrimPage takes the result of a limit+1 fetch and returns at most limit rows
// plus the cursor of the last returned row when more rows exist.
func TrimPage[T any](rows []T, limit int, key func(T) Cursor) ([]T, *string) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil
	}

	page := rows[:limit]
	next := EncodeCursor(key(page[len(page)-1]))
	return page, &next
}

// NormalizeLimit clamps a requested page size into [1, max], using def when
// nothing was requested.
func NormalizeLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
