// SPDX-License-Identifier: MIT

package probtable

import "strings"

// Row is one labelled row of a Table: Values[j] belongs to header column j.
type Row struct {
	Label  string
	Values []float64
}

// Entry is one labelled value of a Distribution.
type Entry struct {
	Label string
	Value float64
}

// Canonical returns the normalized form of a label. Every label stored in or
// looked up from this package passes through it, so callers matching labels
// case-insensitively should use it too.
func Canonical(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
