// Package view renders storefront data as terminal text: product cards,
// product detail, star ratings, prices, the brand strip, the advertisement
// carousel, call options and the footer. Renderers return strings and never
// write to the terminal themselves.
package view
