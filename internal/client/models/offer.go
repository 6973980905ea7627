package models

// Offer is a time-bounded discount attached to a product.
type Offer struct {
	ID              ID         `json:"_id"`
	Product         ProductRef `json:"product"`
	DiscountedPrice float64    `json:"discountedPrice"`
	OfferPercent    float64    `json:"offerPercent"`
	IsActive        bool       `json:"isActive"`
}

// FindOffer returns the first offer that targets productID.
func FindOffer(offers []Offer, productID ID) (*Offer, bool) {
	for i := range offers {
		if offers[i].Product.ID == productID {
			return &offers[i], true
		}
	}
	return nil, false
}

// HasActiveOffer reports whether o is present and active.
func HasActiveOffer(o *Offer) bool {
	return o != nil && o.IsActive
}

// DisplayPrice is the price a customer pays: the discounted price under an
// active offer, the list price otherwise.
func DisplayPrice(p Product, o *Offer) float64 {
	if HasActiveOffer(o) {
		return o.DiscountedPrice
	}
	return p.Price
}

// OrderTotal multiplies the display price by quantity.
func OrderTotal(p Product, o *Offer, quantity int) float64 {
	return DisplayPrice(p, o) * float64(quantity)
}
