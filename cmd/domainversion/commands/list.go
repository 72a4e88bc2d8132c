package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var withVersions bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, func(ctx context.Context, c *container) error {
				if !withVersions {
					return printDomains(cmd.OutOrStdout(), c)
				}
				return printVersions(ctx, cmd.OutOrStdout(), c)
			})
		},
	}

	cmd.Flags().BoolVar(&withVersions, "versions", false, "resolve and print the version of every domain")
	return cmd
}

// printDomains only needs the catalog, so the repository is never opened.
func printDomains(w io.Writer, c *container) error {
	catalog, err := do.Invoke[*version.Catalog](c.injector)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tTAG PREFIX")
	for _, d := range catalog.Domains() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Path, d.TagPrefix)
	}
	return tw.Flush()
}

func printVersions(ctx context.Context, w io.Writer, c *container) error {
	svc, err := c.versionService()
	if err != nil {
		return err
	}

	results := svc.ResolveAll(ctx)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tVERSION")
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(tw, "%s\t%s\terror: %v\n", r.Domain.Name, r.Domain.Path, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Domain.Name, r.Domain.Path, r.Resolution.Version)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d domains failed to resolve", failed, len(results))
	}
	return nil
}
