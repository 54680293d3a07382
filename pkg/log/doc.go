// Package log provides the logging capability injected into the disable
// action.
//
// The action never logs through a global. Callers hand it a [Logger];
// the CLI passes a zerolog-backed adapter and tests pass [NoopLogger].
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("disabling account", log.String("accountId", id))
//
// [NewZerologAdapter] builds a console or JSON logger from the configured
// format and level.
package log
