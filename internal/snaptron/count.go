package snaptron

import "strings"

// headerPrefix marks the column-header line of a Snaptron response
// (e.g. "DataSource:Type\tsnaptron_id\t...").
const headerPrefix = "DataSource"

// CountRecords counts the data lines in a response body, excluding blank
// lines and the optional header line.
func CountRecords(body string) int {
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		if line == "" || strings.HasPrefix(line, headerPrefix) {
			continue
		}
		count++
	}
	return count
}
