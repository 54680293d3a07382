// Package domain contains the value objects of the account disable action.
//
// This package is the innermost layer. It has no dependencies on HTTP,
// configuration or logging and holds only the request/result shapes and
// the rules that govern them.
//
// # Values
//
//   - [DisableRequest]: the account to disable plus optional parameters
//   - [OptionalBool]: a tri-state flag (absent, false, true)
//   - [DisableResult]: the outcome of a successful disable call
//   - [DisableError]: a non-2xx outcome carrying the HTTP status code
//   - [HaltResult]: acknowledgment that a job was halted
//   - [State]: the per-job state machine
//
// All values are request scoped and never persisted.
package domain
