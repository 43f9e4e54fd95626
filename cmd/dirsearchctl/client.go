package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	dirsearch "github.com/kailas-cloud/dirsearch/pkg/sdk"
)

// openClient builds an SDK client from the persistent catalog flags.
func openClient(cmd *cobra.Command) (*dirsearch.Client, error) {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	noEmbedded, _ := cmd.Flags().GetBool("no-embedded")

	var opts []dirsearch.Option
	if dir != "" {
		opts = append(opts, dirsearch.WithCatalogDir(dir))
	}
	if noEmbedded {
		opts = append(opts, dirsearch.WithoutEmbeddedCatalogs())
	}
	return dirsearch.New(cmd.Context(), opts...)
}

func printEntries(out io.Writer, entries []dirsearch.Entry, indent string) {
	for i, e := range entries {
		tier := ""
		if e.Tier >= 0 {
			tier = fmt.Sprintf(" tier=%d", e.Tier)
		}
		fmt.Fprintf(out, "%s%2d. %s [%s] %s score=%g%s\n",
			indent, i+1, e.Name, e.Key, strings.Join(e.Locations, "/"), e.Score, tier)
	}
}
