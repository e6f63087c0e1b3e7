package repositories

import "strings"

// orderClause translates the API's sort spec (a column name, optionally
// prefixed with '-' for descending) into an ORDER BY fragment. Columns are
// whitelisted per repository; anything else falls back to the default. Sort
// specs come straight from query strings, so they are never interpolated
// unchecked.
func orderClause(sort string, allowed map[string]bool, def string) string {
	if sort == "" {
		return " ORDER BY " + def
	}
	desc := false
	col := sort
	if strings.HasPrefix(sort, "-") {
		desc = true
		col = sort[1:]
	}
	if !allowed[col] {
		return " ORDER BY " + def
	}
	if desc {
		return " ORDER BY " + col + " DESC"
	}
	return " ORDER BY " + col + " ASC"
}
