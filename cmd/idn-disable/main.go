package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	idndisable "github.com/bft-labs/idn-disable"
	"github.com/bft-labs/idn-disable/internal/app"
	"github.com/bft-labs/idn-disable/internal/cliconfig"
	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/pkg/log"
)

const helpDescription = `
Disable an account in SailPoint IdentityNow.

Credentials are read from the config file, the environment or both:
  BEARER_AUTH_TOKEN, BASIC_USERNAME/BASIC_PASSWORD,
  OAUTH2_CLIENT_CREDENTIALS_* or OAUTH2_AUTHORIZATION_CODE_ACCESS_TOKEN.

The result is printed to stdout as JSON. Failures print {"error","statusCode"}
and exit with status 1.
`

var exampleUsage = strings.TrimSpace(`
  idn-disable --account-id 2c9180835d2e5168015d32f890ca1581 --address https://acme.api.identitynow.com
  ADDRESS=https://acme.api.identitynow.com idn-disable --account-id 2c91808a --force-provisioning=false
`)

// errReported marks a failure whose output has already been written.
var errReported = errors.New("reported")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type invokeOutcome struct {
	result domain.DisableResult
	err    error
}

// errorOutput is printed when the disable fails.
type errorOutput struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath   string
		params    app.InvokeParams
		forceFlag string
	)

	bootLog := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "idn-disable",
		Short:         "Disable a SailPoint IdentityNow account",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides the file; explicitly set flags override both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if changed["force-provisioning"] {
				fp, err := domain.ParseOptionalBool(forceFlag)
				if err != nil {
					return fmt.Errorf("--force-provisioning: %w", err)
				}
				params.ForceProvisioning = fp
			}

			logger, err := log.NewZerologAdapter(os.Stderr, cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}
			logger.Debug("configuration", log.Any("config", cfg.Redacted()))

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, params, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.idn-disable/config.toml)")
	root.Flags().StringVar(&params.AccountID, "account-id", "", "ID of the account to disable")
	root.Flags().StringVar(&params.Address, "address", "", "IdentityNow API base URL (overrides ADDRESS)")
	root.Flags().StringVar(&params.ExternalVerificationID, "external-verification-id", "", "external verification ID sent with the request")
	root.Flags().StringVar(&forceFlag, "force-provisioning", "", "force provisioning (true|false); omitted unless given")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console or json)")
	if err := root.MarkFlagRequired("account-id"); err != nil {
		bootLog.Info().Err(err).Msg("failed to mark account-id required")
	}

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			bootLog.Error().Err(err).Msg("idn-disable")
		}
		os.Exit(1)
	}
}

// run invokes the job and prints its outcome. SIGINT or SIGTERM runs the halt
// hook instead of waiting for the response.
func run(parent context.Context, out io.Writer, cfg cliconfig.Config, params app.InvokeParams, logger log.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	job := idndisable.NewJob(cfg, logger)
	jc := cfg.JobContext()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	doneCh := make(chan invokeOutcome, 1)
	go func() {
		result, err := job.Invoke(ctx, params, jc)
		doneCh <- invokeOutcome{result: result, err: err}
	}()

	select {
	case sig := <-sigCh:
		cancel()
		halt := job.Halt(ctx, app.HaltParams{
			AccountID: params.AccountID,
			Reason:    "received " + sig.String(),
		}, jc)
		return writeJSON(out, halt)

	case outcome := <-doneCh:
		if outcome.err != nil {
			_, err := job.Error(ctx, app.ErrorParams{InvokeParams: params, Err: outcome.err}, jc)
			logger.Error("account disable failed", log.AccountID(params.AccountID), log.Err(err))
			if werr := writeJSON(out, toErrorOutput(err)); werr != nil {
				return werr
			}
			return errReported
		}
		return writeJSON(out, outcome.result)
	}
}

func toErrorOutput(err error) errorOutput {
	if de, ok := domain.AsDisableError(err); ok {
		return errorOutput{Error: de.Message, StatusCode: de.StatusCode}
	}
	return errorOutput{Error: err.Error()}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
