package models

// PreloadResult holds the provider list of every category that loaded, keyed by category name.
type PreloadResult struct {
	Order     []string
	Providers map[string][]string
}

func NewPreloadResult() PreloadResult {
	return PreloadResult{Providers: map[string][]string{}}
}

// AllProviders returns every provider once, in category order.
func (r PreloadResult) AllProviders() []string {
	seen := make(map[string]struct{})
	all := make([]string, 0)
	for _, category := range r.Order {
		for _, provider := range r.Providers[category] {
			if _, ok := seen[provider]; ok {
				continue
			}
			seen[provider] = struct{}{}
			all = append(all, provider)
		}
	}
	return all
}
