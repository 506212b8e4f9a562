// Package gateway is the client's only path to the remote REST store.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Gateway interface) covering the
//     users and tasks collections: lookups, creation, partial updates and
//     deletion.
//  2. An HTTP implementation (see HTTPGateway) that encodes bodies with
//     goccy/go-json, tags each request with an X-Request-ID and logs every
//     round trip at debug level.
//
// # Error Handling
//
// Network failures, non-2xx answers and undecodable bodies are all returned
// as *Error, which matches common.ErrGateway through errors.Is. Nothing is
// retried and a failed call never leaves a partial mutation behind on the
// client side.
//
// # Concurrency & Contexts
//
// HTTPGateway is safe for concurrent use. Every method honours ctx
// cancellation; an optional per-request timeout is applied on top.
package gateway
