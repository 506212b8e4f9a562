// Package viewmodel derives what the task pages display from raw store
// collections. Every function is pure: inputs are never modified and the same
// inputs always produce the same output.
package viewmodel
