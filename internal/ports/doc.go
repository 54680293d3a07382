// Package ports defines the interfaces that connect the disable job to its
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [AccountDisabler]: performs the disable call against IdentityNow
//   - [HeaderProvider]: builds the authorization header set for a job
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters, internal/auth) implement them.
package ports
