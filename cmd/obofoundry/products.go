package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/obofoundry"
)

type productsOpts struct {
	suffix string
	format string
}

// productLine is one row of the products listing.
type productLine struct {
	Ontology string `json:"ontology"`
	ID       string `json:"id"`
	PURL     string `json:"ontology_purl"`
}

func newProductsCmd(a *app) *cobra.Command {
	o := &productsOpts{}
	cmd := &cobra.Command{
		Use:   "products [FILE|URL]",
		Short: "List the products of every ontology",
		Example: `obofoundry products --suffix .obo
obofoundry products --format json ontologies.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.format != "text" && o.format != "json" && o.format != "dump" {
				return fmt.Errorf("format must be text, json or dump")
			}
			in := a.inputs(args)[0]
			reg, err := a.load(cmd.Context(), in, cmd.InOrStdin())
			if err != nil {
				if a.reportIssues(in, err) {
					return fmt.Errorf("%s is not a valid registry document", in)
				}
				return err
			}
			return printProducts(cmd.OutOrStdout(), filterProducts(reg, o.suffix), o.format)
		},
	}
	cmd.Flags().StringVar(&o.suffix, "suffix", "", "only list products whose id ends with this suffix")
	cmd.Flags().StringVarP(&o.format, "format", "o", "text", "output format: text, json or dump")
	return cmd
}

func filterProducts(reg *obofoundry.Registry, suffix string) []productLine {
	out := []productLine{}
	for _, ont := range reg.Ontologies {
		for _, p := range ont.Products {
			if !strings.HasSuffix(p.ID, suffix) {
				continue
			}
			out = append(out, productLine{Ontology: ont.ID, ID: p.ID, PURL: p.OntologyPURL.String()})
		}
	}
	return out
}

func printProducts(w io.Writer, lines []productLine, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(lines, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "dump":
		spew.Fdump(w, lines)
		return nil
	default:
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "%s - %s\n", l.ID, l.PURL); err != nil {
				return err
			}
		}
		return nil
	}
}
