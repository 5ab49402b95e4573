package services

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere in a column.
// Wildcards typed by the caller are matched literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
