package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domainversion/internal/app"
)

func resolveCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "resolve [domain]",
		Short: "Print the version of a domain",
		Long: `Print the version of the named domain. Without a name, the domain is
inferred from --dir (default: the working directory) by longest path prefix;
a directory outside every declared domain resolves the repository root.`,
		Example: `  domainversion resolve libs-a
  domainversion resolve --dir services/api`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := absDir(dir)
			if err != nil {
				return err
			}

			return withContainer(cmd, opts, func(ctx context.Context, c *container) error {
				svc, err := c.versionService()
				if err != nil {
					return err
				}

				conv := app.NewConvention(svc, projectDir)
				v, err := conv.DomainVersionOf(ctx, firstArg(args))
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "project directory used to infer the domain")
	return cmd
}

// absDir resolves dir against the working directory. The version service
// treats relative paths as repository-relative, so the CLI always passes an
// absolute path.
func absDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving --dir %q: %w", dir, err)
	}
	return abs, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
