// Package models provides high-level clients for common mesh model
// operations: foundation configuration over device keys, generic on/off
// and health over application keys. Each client wraps a model.Model and
// turns query round-trips into typed calls.
package models
