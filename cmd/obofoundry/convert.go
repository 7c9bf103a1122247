package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/obofoundry"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:     "convert [FILE|URL]",
		Short:   "Re-encode a registry document in canonical JSON or YAML",
		Example: `obofoundry convert --to json ontologies.yml > ontologies.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.inputs(args)[0]
			reg, err := a.load(cmd.Context(), in, cmd.InOrStdin())
			if err != nil {
				if a.reportIssues(in, err) {
					return fmt.Errorf("%s is not a valid registry document", in)
				}
				return err
			}
			var out []byte
			switch to {
			case "json":
				out, err = obofoundry.ToJSONIndent(reg)
				out = append(out, '\n')
			case "yaml":
				out, err = obofoundry.ToYAML(reg)
			default:
				return fmt.Errorf("--to must be json or yaml")
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", to, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "output format: json or yaml")
	return cmd
}
