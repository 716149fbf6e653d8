// Package symbol interns identifier spellings so that symbol equality is a
// comparison of IDs.
package symbol

// String returns the result of table.Symbol(id) if id is present in table.
// String otherwise returns a diagnostic string describing id.
func String(id ID, table Table) string {
	s, _ := ResolveUnknown(defaultUnknownResolverFormat, table).Symbol(id)
	return s
}
