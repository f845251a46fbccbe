package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/db"
	"github.com/mugiliam/contentcatalog/internal/ux"
	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/types"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func (a *app) withCatalog(name string, fn func(*catalog.Catalog) error) error {
	if err := a.connectDB(false); err != nil {
		return err
	}
	defer db.Shutdown()
	reg, err := a.registry()
	if err != nil {
		return err
	}
	c, ok := reg.Get(name)
	if !ok {
		return catalogmanager.ErrCatalogNotFound.Msg("catalog '" + name + "' not found")
	}
	return fn(c)
}

func writeJson(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func (a *app) listCmd() *cobra.Command {
	var asJson bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connectDB(false); err != nil {
				return err
			}
			defer db.Shutdown()
			reg, err := a.registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJson {
				return writeJson(out, api.GetCatalogsRsp{Catalogs: reg.Directory()})
			}
			_, err = fmt.Fprint(out, ux.NewRenderer(out).Directory(reg.Directory()))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJson, "json", false, "print JSON")
	return cmd
}

type filterFlags struct {
	category       string
	classification string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "only records of this category")
	cmd.Flags().StringVar(&f.classification, "classification", "", "only records of this classification level")
}

func (f *filterFlags) filter() catalog.Filter {
	out := catalog.Filter{}
	if f.category != "" {
		out.Category.Set(f.category)
	}
	if f.classification != "" {
		out.Classification.Set(f.classification)
	}
	return out
}

func (a *app) showCmd() *cobra.Command {
	var (
		ff     filterFlags
		expand int
	)
	cmd := &cobra.Command{
		Use:   "show <catalog>",
		Short: "Print the records of a catalog, grouped by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(args[0], func(c *catalog.Catalog) error {
				sel := c.NewSelection()
				if expand != 0 {
					sel.Toggle(types.RecordId(expand))
				}
				out := cmd.OutOrStdout()
				records := c.Query(ff.filter().Options()...)
				_, err := fmt.Fprint(out, ux.NewRenderer(out).Catalog(c, records, sel))
				return err
			})
		},
	}
	ff.register(cmd)
	cmd.Flags().IntVar(&expand, "expand", 0, "id of the record to show in detail")
	return cmd
}

func (a *app) queryCmd() *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "query <catalog>",
		Short: "Print the records matching a filter as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(args[0], func(c *catalog.Catalog) error {
				return writeJson(cmd.OutOrStdout(), api.NewRecordsRsp(c, ff.filter()))
			})
		},
	}
	ff.register(cmd)
	return cmd
}

func (a *app) countsCmd() *cobra.Command {
	var (
		category string
		asJson   bool
	)
	cmd := &cobra.Command{
		Use:   "counts <catalog>",
		Short: "Print how many records each classification level holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(args[0], func(c *catalog.Catalog) error {
				out := cmd.OutOrStdout()
				if asJson {
					return writeJson(out, api.NewCountsRsp(c, category))
				}
				r := ux.NewRenderer(out)
				labels := []string{category}
				if category == "" {
					labels = labels[:0]
					for _, cat := range c.Index().Categories() {
						labels = append(labels, cat.Name)
					}
				}
				for _, label := range labels {
					rsp := api.NewCountsRsp(c, label)
					fmt.Fprintf(out, "%-28s %3d  %s\n", label, rsp.Total, r.Counts(rsp.Counts))
				}
				total := api.NewCountsRsp(c, "")
				_, err := fmt.Fprintf(out, "%-28s %3d  %s\n", "Total", total.Total, r.Counts(total.Counts))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "count one category only")
	cmd.Flags().BoolVar(&asJson, "json", false, "print JSON")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <catalog>",
		Short: "Print the document of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown output format %q", format)
			}
			if err := a.connectDB(false); err != nil {
				return err
			}
			defer db.Shutdown()
			rm, err := a.resource(args[0])
			if err != nil {
				return err
			}
			j, err := rm.Schema().ToJSON()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format == "yaml" {
				y, err := yaml.JSONToYAML(j)
				if err != nil {
					return err
				}
				_, err = out.Write(y)
				return err
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, j, "", "  "); err != nil {
				return err
			}
			buf.WriteByte('\n')
			_, err = buf.WriteTo(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format: json or yaml")
	return cmd
}
