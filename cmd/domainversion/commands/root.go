// Package commands implements the domainversion command line: resolve and
// describe print the version of one domain, list shows the declared domains,
// and serve exposes the same queries over HTTP.
package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domainversion/internal/domain"
)

const telemetryFlushTimeout = 5 * time.Second

// Exit codes reported by ExitCode.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitInvalid       = 2
	ExitUnknownDomain = 3
)

type rootOptions struct {
	configFile string
	logLevel   string
}

// NewRootCommand builds the domainversion command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "domainversion",
		Short: "Derive per-domain versions from git tags in a monorepo",
		Long: `domainversion computes the version of an independently released subtree
("domain") of a monorepo from the nearest domain tag, the number of commits
touching the domain since that tag, and the state of the working tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file (default .domainversion.yaml in the working directory)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"override log.level (debug, info, warn, error)")

	root.AddCommand(
		resolveCmd(opts),
		describeCmd(opts),
		listCmd(opts),
		serveCmd(opts),
	)
	return root
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrUnknownDomain):
		return ExitUnknownDomain
	case errors.Is(err, domain.ErrValidation):
		return ExitInvalid
	default:
		return ExitFailure
	}
}

// withContainer wires the graph, runs fn and flushes telemetry afterwards.
func withContainer(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, c *container) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := newContainer(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
		defer cancel()
		c.Close(flushCtx)
	}()

	return fn(ctx, c)
}
