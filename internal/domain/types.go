// Package domain defines the value types shared by the widget components and the TUI.
// These types carry no behaviour beyond small helpers and are safe to copy.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Item represents a single todo entry.
type Item struct {
	ID        string    `json:"id"`        // Opaque unique identifier, never reused
	Text      string    `json:"text"`      // Trimmed, non-empty description
	Completed bool      `json:"completed"` // Completion flag
	CreatedAt time.Time `json:"createdAt"` // Creation time (UTC)
}

// Filter selects a subsequence of items by completion status.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Match reports whether the item passes the filter.
func (f Filter) Match(item Item) bool {
	switch f {
	case FilterActive:
		return !item.Completed
	case FilterCompleted:
		return item.Completed
	default:
		return true
	}
}

// String returns the lowercase filter name used by the CLI.
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// ParseFilter parses a filter name (case-insensitive).
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Operator is a binary arithmetic operator.
type Operator string

// Operator constants. OpNone means no operator is pending.
const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// Valid reports whether op is one of the four arithmetic operators.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// Symbol returns the display glyph for the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	case OpSubtract:
		return "−"
	}
	return string(op)
}

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
