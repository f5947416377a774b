package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/punyakios/go-kios-client/cmd/setup"
)

var providersCmd = &cobra.Command{
	Use:   "providers <category>",
	Short: "List the providers of a catalog category",
	Args:  cobra.ExactArgs(1),
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		refresh, _ := ccmd.Flags().GetBool(flagRefresh)
		providers, err := s.Service.Catalog.Providers(ctx, args[0], refresh)
		if err != nil {
			return err
		}
		return printJSON(ccmd, providers)
	}),
}

var typesCmd = &cobra.Command{
	Use:   "types <category> <provider>",
	Short: "List the product types a provider sells in a category",
	Args:  cobra.ExactArgs(2),
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		refresh, _ := ccmd.Flags().GetBool(flagRefresh)
		types, err := s.Service.Catalog.ProductTypes(ctx, args[0], args[1], refresh)
		if err != nil {
			return err
		}
		return printJSON(ccmd, types)
	}),
}

var productsCmd = &cobra.Command{
	Use:   "products <category> <provider>",
	Short: "List the products of a provider, optionally narrowed to one type",
	Args:  cobra.ExactArgs(2),
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		refresh, _ := ccmd.Flags().GetBool(flagRefresh)
		productType, _ := ccmd.Flags().GetString("type")
		products, err := s.Service.Catalog.Products(ctx, args[0], args[1], productType, refresh)
		if err != nil {
			return err
		}
		return printJSON(ccmd, products)
	}),
}

var preloadCmd = &cobra.Command{
	Use:   "preload",
	Short: "Load the providers of every category into the cache",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		refresh, _ := ccmd.Flags().GetBool(flagRefresh)
		result, err := s.Service.Preload.Preload(ctx, refresh)
		if printErr := printJSON(ccmd, result); printErr != nil {
			return printErr
		}
		return err
	}),
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent catalog cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached catalog entry",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		if err := s.Service.Catalog.ClearCache(ctx); err != nil {
			return err
		}
		ccmd.Println("catalog cache cleared")
		return nil
	}),
}

func init() {
	for _, c := range []*cobra.Command{providersCmd, typesCmd, productsCmd, preloadCmd} {
		c.Flags().Bool(flagRefresh, false, "bypass the cache and fetch from the API")
	}
	productsCmd.Flags().String("type", "", "only products of this type")

	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(providersCmd, typesCmd, productsCmd, preloadCmd, cacheCmd)
}
