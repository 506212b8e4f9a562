// Package pages holds the controllers of the task pages. Each controller
// owns an explicit State: the collections of its last successful fetch and
// the active filter criteria. A fetch replaces the state wholesale; a failed
// fetch or mutation leaves it as it was. Everything shown is derived from the
// state through the viewmodel package.
package pages
