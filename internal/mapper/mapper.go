// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package mapper holds the pure helpers every backend uses to reshape
// upstream documents into flat, Spanish-labelled responses: ranking,
// aggregation, duration formatting, truncation and optional-field handling.
package mapper

import (
	"fmt"
	"sort"
)

// Standard truncation budgets, in Unicode code points.
const (
	SummaryBudget = 300
	ExcerptBudget = 200
)

// Count is one entry of a TopNByCount result.
type Count struct {
	Key   string
	Count int
}

// CountBy tallies keys in first-seen order. Empty keys are skipped.
func CountBy(keys []string) []Count {
	index := make(map[string]int)
	counts := make([]Count, 0)
	for _, k := range keys {
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, Count{Key: k, Count: 1})
	}
	return counts
}

// CountMap returns the tally of keys as a map. Empty keys are skipped.
func CountMap(keys []string) map[string]int {
	m := make(map[string]int)
	for _, k := range keys {
		if k != "" {
			m[k]++
		}
	}
	return m
}

// TopNByCount counts keys and returns the n most frequent. Ties keep the
// order in which the keys were first seen.
func TopNByCount(keys []string, n int) []Count {
	counts := CountBy(keys)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// TopK returns the k items with the highest score, descending. Ties keep
// input order. The input slice is not modified.
func TopK[T any](items []T, k int, score func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	return First(out, k)
}

// First returns at most the first n items.
func First[T any](items []T, n int) []T {
	if n < 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

// Sum adds value(item) over items.
func Sum[T any](items []T, value func(T) int) int {
	total := 0
	for _, it := range items {
		total += value(it)
	}
	return total
}

// FormatDuration renders milliseconds as m:ss. Minutes are not wrapped into
// hours, so one hour is "60:00".
func FormatDuration(ms int) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// Truncate cuts s to budget code points followed by "...". Text within the
// budget is returned unchanged.
func Truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "..."
}

// TruncatePtr truncates an optional string, keeping nil as nil.
func TruncatePtr(s *string, budget int) *string {
	if s == nil {
		return nil
	}
	t := Truncate(*s, budget)
	return &t
}

// ImageURL joins base and path when path is present and non-empty,
// otherwise it returns nil.
func ImageURL(base string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := base + *path
	return &u
}

// DatePrefix returns the YYYY-MM-DD prefix of an ISO-8601 timestamp.
func DatePrefix(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

// String dereferences an optional string, defaulting to "".
func String(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringOr dereferences s, falling back to def when nil or empty.
func StringOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// Strings returns s, or an empty non-nil slice when s is nil, so it encodes
// as [] rather than null.
func Strings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Slice is the generic form of Strings.
func Slice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Map converts each item with fn, always returning a non-nil slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// Filter keeps the items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Image is the common {url, width, height} image shape.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FirstImage returns the URL of the first image, or nil when there is none.
func FirstImage(images []Image) *string {
	if len(images) == 0 || images[0].URL == "" {
		return nil
	}
	u := images[0].URL
	return &u
}
