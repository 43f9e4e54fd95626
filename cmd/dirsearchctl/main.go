package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dirsearch/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dirsearchctl",
		Short:        "Inspect, query and build dirsearch catalogs",
		SilenceUsage:  true,
	}
	root.Version = version.String()
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().String("catalog-dir", "", "Directory of catalog YAML files")
	root.PersistentFlags().Bool("no-embedded", false, "Skip the built-in catalogs")

	root.AddCommand(catalogsCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(topCmd())
	root.AddCommand(importFSQCmd())
	return root
}
