// Package diagnostic provides the structured event sink the planner
// reports to. It is a small, leveled, field-carrying Logger interface
// backed by the standard library's fmt, io and sync packages, with no
// third-party logging dependency — see DESIGN.md.
package diagnostic
