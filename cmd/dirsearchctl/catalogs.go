package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func catalogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List loaded catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := openClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			cats, err := client.Catalogs(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cats) == 0 {
				fmt.Fprintln(out, "No catalogs loaded.")
				return nil
			}
			for _, c := range cats {
				fmt.Fprintf(out, "%s (%d entries) %s\n", c.Name, c.Entries, c.Title)
				fmt.Fprintf(out, "  categories: %s\n", strings.Join(c.Categories, ", "))
				if len(c.Platforms) > 0 {
					fmt.Fprintf(out, "  platforms:  %s\n", strings.Join(c.Platforms, ", "))
				}
				if len(c.Presets) > 0 {
					fmt.Fprintf(out, "  presets:    %s\n", strings.Join(c.Presets, ", "))
				}
			}
			return nil
		},
	}
}
