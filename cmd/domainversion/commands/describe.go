package commands

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

func describeCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "describe [domain]",
		Short: "Print the resolution of a domain as JSON",
		Long: `Print the base tag, commit distance, short hash and dirty flag behind a
domain's version as JSON. Domain selection works as for resolve.`,
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

				var res *version.Resolution
				if name := firstArg(args); name != "" {
					res, err = svc.Describe(ctx, name)
				} else {
					res, err = svc.DescribeDefault(ctx, projectDir)
				}
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToVersionResponse(res))
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "project directory used to infer the domain")
	return cmd
}
