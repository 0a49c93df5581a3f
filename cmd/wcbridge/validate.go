package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/wcbridge/internal/config"
	"github.com/vango-dev/wcbridge/internal/demo"
	"github.com/vango-dev/wcbridge/pkg/dom"
)

func validateCmd() *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a manifest",
		Long: `Load a manifest, resolve every component and wrapper it names and
define its elements in a scratch document.

Examples:
  wcbridge validate
  wcbridge validate --manifest site/wcbridge.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadFile(manifest)
			if err != nil {
				return err
			}
			scope, err := functionScope(m)
			if err != nil {
				return err
			}
			defs, err := demo.Default().Install(dom.NewDocument().Registry(), m, demo.InstallOptions{Scope: scope})
			if err != nil {
				return err
			}
			success(cmd, "%s is valid", manifest)
			for _, d := range defs {
				info(cmd, "<%s> observes %v", d.TagName(), d.ObservedAttributes())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", config.ManifestFileName, "Manifest path")
	return cmd
}
