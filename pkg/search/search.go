/*
Package search implements the matching core of linegrep. It provides pure
functions that scan a document held in memory and return the lines containing
a query string, either case-sensitively or case-insensitively.

Both functions are total: they never fail, an empty query matches every line,
and empty contents yield no results. Returned lines are subslices of the
input string, so no line content is copied.

Basic usage:

	matches := search.Search("duct", contents)
	matches = search.SearchCaseInsensitive("rUsT", contents)
*/
package search

import "strings"

// Search returns every line of contents containing query as an exact
// substring, in document order.
func Search(query, contents string) []string {
	results := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}

	return results
}

// SearchCaseInsensitive returns every line of contents containing query,
// comparing both sides after lowercasing. The returned lines keep their
// original casing; lowercasing is used for the comparison only.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	results := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}

	return results
}

// Lines splits contents into lines on newline characters. A terminator at the
// very end of contents does not produce an empty final line, and a carriage
// return preceding a newline is stripped, so both LF and CRLF documents split
// the same way.
func Lines(contents string) []string {
	if contents == "" {
		return []string{}
	}

	lines := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
