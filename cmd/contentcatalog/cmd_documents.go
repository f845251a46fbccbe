package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/internal/db"
	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/spf13/cobra"
)

func (a *app) readResource(path string) (schemamanager.ResourceManager, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalogmanager.NewResource(a.ctx, doc, schemamanager.WithSource(path))
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check catalog documents without serving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				rm, err := a.readResource(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %s\n", path, errorText(err))
					continue
				}
				fmt.Fprintf(out, "%s: ok (%s, %d records)\n", path, rm.Name(), rm.Catalog().Store().Len())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Store catalog documents in PostgreSQL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// every document is validated before anything is written
			rms := make([]schemamanager.ResourceManager, 0, len(args))
			for _, path := range args {
				rm, err := a.readResource(path)
				if err != nil {
					return fmt.Errorf("%s: %s", path, errorText(err))
				}
				rms = append(rms, rm)
			}
			if err := a.connectDB(true); err != nil {
				return err
			}
			defer db.Shutdown()

			return catalogmanager.WithConn(a.ctx, func(ctx context.Context) error {
				for _, rm := range rms {
					hash, changed, err := catalogmanager.SaveResource(ctx, rm)
					if err != nil {
						return err
					}
					err = writeJson(cmd.OutOrStdout(), api.ImportCatalogRsp{
						Name:    rm.Name(),
						Hash:    hash,
						Changed: changed,
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <catalog>...",
		Short: "Remove stored catalogs from PostgreSQL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connectDB(true); err != nil {
				return err
			}
			defer db.Shutdown()
			return catalogmanager.WithConn(a.ctx, func(ctx context.Context) error {
				for _, name := range args {
					if err := catalogmanager.DeleteResource(ctx, name); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", name)
				}
				return nil
			})
		},
	}
}
