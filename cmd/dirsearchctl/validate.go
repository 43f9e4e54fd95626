package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check catalog YAML files without loading them into a server",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		if err := validateFile(path); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d catalogs invalid", failed, len(args))
	}
	return nil
}

func validateFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}
	f, err := catalogrepo.Decode(data)
	if err != nil {
		return err
	}
	if f.Name == "" {
		return errors.New("name is required")
	}
	_, err = f.ToDomain()
	return err
}
