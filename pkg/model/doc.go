// Package model implements the reliable request/response machinery layered
// on top of the access codec: per-key-context dispatch of inbound messages,
// single-shot expectations over decoded messages, periodic retransmission of
// outbound messages, and query/bulk-query coordination with deadlines.
//
// The package does not move bytes itself. A Sender collaborator performs the
// actual transmission and the owner feeds received payloads into
// Model.Receive in arrival order.
package model
