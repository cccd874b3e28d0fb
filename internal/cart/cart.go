// Package cart holds the shopping cart item model, the arithmetic over
// item lists, and the session-scoped cart store. Prices are dollars;
// conversion to minor units happens only at the Stripe boundary.
package cart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Item is a single cart line. Carts exist only for the duration of a
// browsing session; nothing is persisted.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Image    string  `json:"image"`
}

// Total returns the cart total in dollars: sum of price x quantity.
func Total(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units across all lines.
func ItemCount(items []Item) int64 {
	var count int64
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// FormatPrice formats dollars as en-US currency (e.g. 1234.5 -> "$1,234.50").
func FormatPrice(price float64) string {
	cents := int64(math.Round(price * 100))

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

// ParsePrice parses a display price like "$4,499" back into dollars.
// Returns 0 for unparseable input.
func ParsePrice(s string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
