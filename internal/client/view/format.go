package view

import (
	"html"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	CurrencySymbol = "₹"
	MaxStars       = 5
)

var (
	pricePrinter = message.NewPrinter(language.English)
	strictPolicy = bluemonday.StrictPolicy()
)

// FormatPrice renders an amount in rupees with digit grouping and at most
// two fraction digits: 45000 -> "₹45,000".
func FormatPrice(amount float64) string {
	return CurrencySymbol + pricePrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// StarCount rounds an average rating half-up and clamps it to 0..5.
func StarCount(average float64) int {
	if math.IsNaN(average) {
		return 0
	}
	n := int(math.Floor(average + 0.5))
	return min(max(n, 0), MaxStars)
}

// Stars draws filled and empty stars for an average rating.
func Stars(average float64) string {
	n := StarCount(average)
	return strings.Repeat("★", n) + strings.Repeat("☆", MaxStars-n)
}

// Sanitize strips markup from server-provided text.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
