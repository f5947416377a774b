package models

import (
	"strings"
)

// ProductItem is a product as returned by POST /api/product/{category}.
type ProductItem struct {
	ID       Flexible `json:"id"`
	Name     string   `json:"name"`
	Price    Decimal  `json:"price"`
	Desc     string   `json:"desc"`
	Category string   `json:"category"`
	SKU      string   `json:"sku"`
	Multi    bool     `json:"multi"`
	Provider string   `json:"provider"`
	Type     string   `json:"type"`
}

// Product is the stored, display-ready shape of a ProductItem.
type Product struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Price    Decimal `json:"price"`
	Desc     string  `json:"desc"`
	Category string  `json:"category"`
	SKU      string  `json:"sku"`
	Multi    bool    `json:"multi"`
	Provider string  `json:"provider"`
	Type     string  `json:"type"`
}

func (p ProductItem) ToProduct() Product {
	return Product{
		ID:       string(p.ID),
		Label:    p.Name,
		Price:    p.Price,
		Desc:     p.Desc,
		Category: p.Category,
		SKU:      p.SKU,
		Multi:    p.Multi,
		Provider: p.Provider,
		Type:     p.Type,
	}
}

// MatchProvider compares providers case-insensitively.
func (p ProductItem) MatchProvider(provider string) bool {
	return strings.EqualFold(p.Provider, provider)
}

// DistinctProviders returns provider names in order of first appearance, case-sensitive.
func DistinctProviders(items []ProductItem) []string {
	return distinct(items, func(p ProductItem) (string, bool) {
		return p.Provider, p.Provider != ""
	})
}

// DistinctTypes returns the types offered by provider, in order of first appearance.
func DistinctTypes(items []ProductItem, provider string) []string {
	return distinct(items, func(p ProductItem) (string, bool) {
		return p.Type, p.Type != "" && p.MatchProvider(provider)
	})
}

func distinct(items []ProductItem, pick func(ProductItem) (string, bool)) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v, ok := pick(item)
		if !ok {
			continue
		}
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
