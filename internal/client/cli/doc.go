// Package cli provides the interactive taskdesk command-line client.
//
// It wires configuration, the local session database, the REST gateway and
// the page controllers, and drives them from a read–eval–print loop. The
// terminal plays the part of the browser: every command opens a page through
// the router, so the access guard runs before anything is fetched, and the
// page is rendered from its controller's view state.
//
// Key features:
//   - Register / Login / Logout
//   - User dashboard with quick buckets and search
//   - Admin dashboard with owner names, filters and full task edit
//   - New task form, status changes and deletion
//   - Profile card, profile edit and avatar upload
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled. See App and runREPL for details.
package cli
