// Package common contains shared constants and sentinel errors used across
// taskdesk components.
package common

// RequestIDHeaderName is the HTTP header that carries the per-request id on
// outbound gateway calls.
const RequestIDHeaderName = "X-Request-ID"

// CurrentUserKey is the key-value store key holding the serialized session.
const CurrentUserKey = "currentUser"
