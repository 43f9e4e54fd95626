package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dirsearch/internal/importer/fsq"
	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
)

func importFSQCmd() *cobra.Command {
	var (
		opts   fsq.Options
		output string
	)
	cmd := &cobra.Command{
		Use:   "import-fsq INPUT",
		Short: "Build a catalog from Foursquare OS Places parquet files",
		Long: "INPUT is a places parquet file or a directory of them. Closed places and\n" +
			"places without a category are skipped; the top-level FSQ category label\n" +
			"becomes the entry category.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, stats, err := fsq.Import(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			data, err := catalogrepo.Encode(f)
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "read %d, imported %d, closed %d, filtered %d, no category %d, invalid %d, duplicate %d\n",
				stats.Read, stats.Imported, stats.Closed, stats.Filtered, stats.NoCategory, stats.Invalid, stats.Duplicate)

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(filepath.Clean(output), data, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(errOut, "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Catalog name (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Catalog title")
	cmd.Flags().StringVar(&opts.Country, "country", "", "Keep only this ISO country code")
	cmd.Flags().StringVar(&opts.Locality, "locality", "", "Keep only this locality")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Platform label for every entry")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum entries (0 = catalog maximum)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
