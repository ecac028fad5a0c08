// Package domain holds the core types of the shelfwise catalog.
package domain

import "strings"

// Book is a single catalog entry. Books are identified by their
// position in the catalog: the index is the join key between the
// catalog and the vector matrix and stays stable for the lifetime
// of a fitted model.
type Book struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Year        int     `json:"year"`
}

// CombinedText returns the document used for vectorization:
// title, author, genre and description joined by single spaces,
// in that fixed order. Absent fields are empty strings, never null.
func (b Book) CombinedText() string {
	return strings.Join([]string{b.Title, b.Author, b.Genre, b.Description}, " ")
}
