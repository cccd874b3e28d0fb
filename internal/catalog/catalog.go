// Package catalog holds the static product catalog. The site sells a
// small fixed line of electrolyzer hardware and test stands; there is no
// database, so the catalog lives in memory.
package catalog

import "sort"

type Category string

const (
	CategoryTestStand Category = "test-stand"
	CategoryHardware  Category = "hardware"
)

// TransactionCategory controls how a product is purchased: cart products
// go through Stripe checkout, quote products go through the quote form.
type TransactionCategory string

const (
	TransactionCart  TransactionCategory = "cart"
	TransactionQuote TransactionCategory = "quote"
)

type Product struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Category            Category            `json:"category"`
	TransactionCategory TransactionCategory `json:"transactionCategory"`
	Price               string              `json:"price,omitempty"`
	ShortDescription    string              `json:"shortDescription"`
	FullDescription     string              `json:"fullDescription"`
	Specifications      map[string]string   `json:"specifications"`
	Features            []string            `json:"features"`
	Images              []string            `json:"images"`
	Applications        []string            `json:"applications"`
}

// Get returns the product with the given ID.
func Get(id string) (Product, bool) {
	p, ok := products[id]
	return p, ok
}

// All returns every product, ordered by ID for stable output.
func All() []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByCategory returns products in the given category, ordered by ID.
func ByCategory(category Category) []Product {
	var out []Product
	for _, p := range All() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
