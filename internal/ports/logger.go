package ports

import "github.com/bft-labs/idn-disable/pkg/log"

// Logger is the structured logger injected into the job and its adapters.
type Logger = log.Logger

// Field is a structured logging key-value pair.
type Field = log.Field
