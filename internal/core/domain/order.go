package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// MoveUp swaps the element at i with its predecessor and returns the new slice.
func MoveUp[T any](items []T, i int) ([]T, error) {
	if i <= 0 || i >= len(items) {
		return nil, outOfRange(i, len(items))
	}
	return MoveTo(items, i, i-1)
}

// MoveDown swaps the element at i with its successor and returns the new slice.
func MoveDown[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items)-1 {
		return nil, outOfRange(i, len(items))
	}
	return MoveTo(items, i, i+1)
}

// MoveTo moves the element at from to position to, keeping every other element in relative order.
// The input slice is not modified.
func MoveTo[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) {
		return nil, outOfRange(from, len(items))
	}
	if to < 0 || to >= len(items) {
		return nil, outOfRange(to, len(items))
	}

	out := slices.Clone(items)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item), nil
}

func outOfRange(i, n int) error {
	return zerr.With(zerr.With(ErrIndexOutOfRange, "index", i), "len", n)
}

// InsertRepoRule inserts rule just before the currently matching rule so it takes precedence.
// With no current match it is appended.
func InsertRepoRule(rules []RepoRule, rule RepoRule, matchIndex int) []RepoRule {
	if matchIndex < 0 || matchIndex >= len(rules) {
		return append(slices.Clone(rules), rule)
	}
	return slices.Insert(slices.Clone(rules), matchIndex, rule)
}
