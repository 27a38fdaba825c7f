// Package format provides the message-shaping layer for GRIP publishing.
// It defines the Format capability every serializable message variant
// implements, the Item container that pairs one Format with optional
// sequencing identifiers, and the JSON envelope the publish endpoint
// expects.
//
// # Structure
//
// A published message is built from three layers:
//
//  1. Format - a serialization strategy producing the wire-level mapping
//  2. Item - one message-to-publish, wrapping a single Format
//  3. Envelope - the {"items": [...]} body POSTed to the proxy
//
// Any type satisfying Format is accepted; the concrete formats in this
// package (JSONObject, HTTPStream, HTTPResponse) cover the common GRIP
// content types, and callers supply their own for anything else.
package format
