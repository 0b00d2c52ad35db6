package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/pkg/manifest"
	"github.com/wayfind-dev/wayfind/pkg/route"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate a route manifest",
		Long: `Check compiles every pattern in a route manifest and reports
conflicts: duplicate matching shapes, unnamed captures, and capture
names bound twice in one pattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			if err := m.Validate(); err != nil {
				var multi *route.MultiValidationError
				if errors.As(err, &multi) {
					for _, ve := range multi.Errors {
						fail("%s", ve.Error())
					}
					return fmt.Errorf("%d invalid route(s) in %s", len(multi.Errors), args[0])
				}
				return err
			}

			success("%d routes valid", len(m.Routes))
			for _, r := range m.Routes {
				info("%-24s %s", r.Name, r.Pattern)
			}
			return nil
		},
	}
}
