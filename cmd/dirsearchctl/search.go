package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dirsearch "github.com/kailas-cloud/dirsearch/pkg/sdk"
)

type locationFlags struct {
	city    string
	country string
}

func (l *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&l.city, "city", "", "Caller city for ranking")
	cmd.Flags().StringVar(&l.country, "country", "", "Caller country for ranking")
}

func (l *locationFlags) location() *dirsearch.Location {
	if l.city == "" && l.country == "" {
		return nil
	}
	return &dirsearch.Location{City: l.city, Country: l.country}
}

func searchCmd() *cobra.Command {
	var (
		q       dirsearch.Query
		loc     locationFlags
		grouped bool
	)
	cmd := &cobra.Command{
		Use:   "search CATALOG [QUERY]",
		Short: "Filter and rank a catalog",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				q.Text = args[1]
			}
			client, err := openClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			if grouped {
				groups, err := client.Group(cmd.Context(), args[0], q, loc.location())
				if err != nil {
					return err
				}
				for _, g := range groups {
					fmt.Fprintf(out, "%s (%d)\n", g.Category, len(g.Entries))
					printEntries(out, g.Entries, "  ")
				}
				return nil
			}

			res, err := client.Filter(cmd.Context(), args[0], q, loc.location())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d of %d entries\n", res.TotalAfter, res.TotalBefore)
			printEntries(out, res.Entries, "")
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&q.Categories, "category", nil, "Category to include (repeatable)")
	cmd.Flags().StringVar(&q.Region, "region", "", "City or country to restrict to")
	cmd.Flags().StringVar(&q.Platform, "platform", "", "Platform or type")
	cmd.Flags().StringVar(&q.Preset, "preset", "", "Preset id")
	cmd.Flags().BoolVar(&grouped, "group", false, "Group results by category")
	loc.register(cmd)
	return cmd
}

func topCmd() *cobra.Command {
	var (
		loc locationFlags
		n   int
	)
	cmd := &cobra.Command{
		Use:   "top CATALOG",
		Short: "Show the best entries near a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			top, err := client.TopLocal(cmd.Context(), args[0], loc.location(), n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(top) == 0 {
				where := strings.TrimSpace(loc.city + " " + loc.country)
				fmt.Fprintf(out, "Nothing local for %q.\n", where)
				return nil
			}
			printEntries(out, top, "")
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", 3, "Number of entries")
	loc.register(cmd)
	return cmd
}
