package catalog

import (
	"strings"
)

// Category describes one provider catalog served by the backend.
type Category struct {
	Name     string
	Endpoint string
	Field    string
	Key      string
}

func (c Category) Request() CatalogRequest {
	return CatalogRequest{
		Key:      c.Key,
		Endpoint: c.Endpoint,
		Field:    c.Field,
	}
}

// ProductQuery returns the product request for provider under this category.
func (c Category) ProductQuery(provider, productType string) ProductQuery {
	return ProductQuery{
		Prefix:   c.Name,
		Provider: provider,
		Type:     productType,
		Endpoint: c.Endpoint,
		Field:    c.Field,
	}
}

var Categories = []Category{
	{Name: "pulsa", Endpoint: "/api/product/pulsa", Field: "pulsa", Key: "pulsa_providers"},
	{Name: "data", Endpoint: "/api/product/data", Field: "data", Key: "data_providers"},
	{Name: "pln", Endpoint: "/api/product/pln", Field: "pln", Key: "pln_providers"},
	{Name: "emoney", Endpoint: "/api/product/emoney", Field: "emoney", Key: "emoney_providers"},
	{Name: "voucher", Endpoint: "/api/product/voucher", Field: "voucher", Key: "voucher_providers"},
	{Name: "games", Endpoint: "/api/product/games", Field: "games", Key: "games_providers"},
	{Name: "tv", Endpoint: "/api/product/tv", Field: "tv", Key: "tv_providers"},
	{Name: "masaaktif", Endpoint: "/api/product/masaaktif", Field: "masa_aktif", Key: "masaaktif_providers"},
}

// LookupCategory finds a category by name, ignoring case.
func LookupCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}
