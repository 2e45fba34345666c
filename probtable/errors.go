// SPDX-License-Identifier: MIT

// Package probtable: sentinel errors.
// Every construction failure returns one of these, wrapped with line or label
// context via fmt.Errorf("...: %w", ErrX). Match with errors.Is.

package probtable

import "errors"

var (
	// ErrEmptyHeader is returned when a table has no column labels.
	ErrEmptyHeader = errors.New("probtable: header has no column labels")

	// ErrNoRows is returned when a table or distribution has no rows.
	ErrNoRows = errors.New("probtable: no rows")

	// ErrColumnCount indicates a row whose value count differs from the header width.
	ErrColumnCount = errors.New("probtable: row value count does not match header")

	// ErrBadValue signals an unparseable, NaN, ±Inf or negative probability.
	ErrBadValue = errors.New("probtable: invalid probability value")

	// ErrDuplicateLabel indicates that a label occurs twice after case normalization.
	ErrDuplicateLabel = errors.New("probtable: duplicate label")

	// ErrEmptyLabel indicates a blank row or column label.
	ErrEmptyLabel = errors.New("probtable: empty label")
)
