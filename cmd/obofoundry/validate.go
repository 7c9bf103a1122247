package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE|URL]...",
		Short: "Check registry documents against the registry model",
		Example: `obofoundry validate
obofoundry validate ontologies.yml
obofoundry validate https://example.org/registry.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := a.inputs(args)
			failed := 0
			for _, in := range inputs {
				reg, err := a.load(cmd.Context(), in, cmd.InOrStdin())
				if err != nil {
					if !a.reportIssues(in, err) {
						return err
					}
					failed++
					continue
				}
				a.log.WithField("input", in).Infof("ok: %d ontologies", len(reg.Ontologies))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(inputs))
			}
			return nil
		},
	}
}
