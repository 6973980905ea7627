package view

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain() *Renderer { return NewRenderer(PlainStyles()) }

func sofa() models.Product {
	return models.Product{
		ID:               "p1",
		Name:             "Teak <i>Sofa</i>",
		Price:            45000,
		Stock:            3,
		ShortDescription: "Three seater",
		Specifications: []models.Specification{
			{Name: "Material", Value: "Teak"},
			{Name: "Seats", Value: "3"},
			{Name: "Finish", Value: "Walnut"},
		},
	}
}

func TestProductCard_WithActiveOffer(t *testing.T) {
	offer := &models.Offer{Product: models.ProductRef{ID: "p1"}, DiscountedPrice: 39999, OfferPercent: 11, IsActive: true}
	reviews := &models.ReviewSummary{AverageRating: 4.5, Count: 2}

	got := plain().ProductCard(sofa(), offer, reviews, true)

	want := "♥ Teak Sofa   11% OFF \n" +
		"  Material: Teak | Seats: 3\n" +
		"  Three seater\n" +
		"  ★★★★★ (2)\n" +
		"  ₹39,999  ₹45,000\n" +
		"  id: p1"
	assert.Equal(t, want, got)
}

func TestProductCard_InactiveOfferAndNoReviews(t *testing.T) {
	p := sofa()
	p.Specifications = nil
	p.ShortDescription = ""
	offer := &models.Offer{DiscountedPrice: 1, OfferPercent: 99, IsActive: false}

	got := plain().ProductCard(p, offer, nil, false)

	assert.Equal(t, "♡ Teak Sofa\n  ☆☆☆☆☆ (0)\n  ₹45,000\n  id: p1", got)
}

func TestProductList(t *testing.T) {
	r := plain()
	assert.Equal(t, "No products found", r.ProductList(nil, nil, nil, func(models.ID) bool { return false }))

	products := []models.Product{{ID: "a", Name: "A", Price: 1}, {ID: "b", Name: "B", Price: 2}}
	liked := func(id models.ID) bool { return id == "b" }
	got := r.ProductList(products, nil, map[models.ID]models.ReviewSummary{"a": {AverageRating: 3, Count: 1}}, liked)
	assert.Equal(t, "♡ A\n  ★★★☆☆ (1)\n  ₹1\n  id: a\n\n♥ B\n  ☆☆☆☆☆ (0)\n  ₹2\n  id: b", got)
}

func TestProductDetail(t *testing.T) {
	p := sofa()
	p.DetailedDescription = "Hand <b>finished</b>"
	offer := &models.Offer{DiscountedPrice: 39999, OfferPercent: 11, IsActive: true}
	summary := models.ReviewSummary{
		AverageRating: 4.4,
		Count:         1,
		Reviews: []models.Review{{
			UserName:  "Meena",
			Rating:    5,
			Comment:   "Excellent",
			CreatedAt: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		}},
	}

	got := plain().ProductDetail(p, offer, summary, false)

	assert.Contains(t, got, "Teak Sofa   11% OFF \n")
	assert.Contains(t, got, "★★★★☆ 4.4 (1 reviews)\n")
	assert.Contains(t, got, "₹39,999  ₹45,000\nIn Stock\n")
	assert.Contains(t, got, "  Finish: Walnut\n")
	assert.Contains(t, got, "Description\n  Hand finished\n")
	assert.Contains(t, got, "Images\n  "+PlaceholderDetailImage+"\n")
	assert.Contains(t, got, "♡ Not liked")
	assert.Contains(t, got, "  ★★★★★ Meena 09 Mar 2025\n    Excellent")

	p.Stock = 0
	assert.Contains(t, plain().ProductDetail(p, nil, models.ReviewSummary{}, true), "₹45,000\nOut of Stock\n")
}

func TestReviews_Empty(t *testing.T) {
	assert.Equal(t, "No reviews yet. Be the first to review!", plain().Reviews(models.ReviewSummary{}))
}

func TestOrderTotal(t *testing.T) {
	offer := &models.Offer{DiscountedPrice: 39999, IsActive: true}
	assert.Equal(t, "Total: ₹79,998", plain().OrderTotal(sofa(), offer, 2))
	assert.Equal(t, "Total: ₹135,000", plain().OrderTotal(sofa(), nil, 3))
}

func TestBrands(t *testing.T) {
	r := plain()
	assert.Empty(t, r.Brands(nil))
	got := r.Brands([]models.Brand{{Name: "Godrej"}, {Name: "Nilkamal"}})
	assert.Equal(t, "Our Brands\nPartnered with the finest furniture brands\n  Godrej  ·  Nilkamal", got)
}

func TestAdCarousel_Rotation(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ads := []models.Advertisement{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	c := NewAdCarousel(ads, start)

	assert.Equal(t, 0, c.IndexAt(start))
	assert.Equal(t, 0, c.IndexAt(start.Add(4*time.Second)))
	assert.Equal(t, 1, c.IndexAt(start.Add(5*time.Second)))
	assert.Equal(t, 2, c.IndexAt(start.Add(10*time.Second)))
	assert.Equal(t, 0, c.IndexAt(start.Add(15*time.Second)))
	assert.Equal(t, 0, c.IndexAt(start.Add(-time.Minute)))

	c.Select(2, start.Add(time.Second))
	assert.Equal(t, 2, c.IndexAt(start.Add(time.Second)))
	assert.Equal(t, 0, c.IndexAt(start.Add(6*time.Second)))

	c.Select(-1, start)
	assert.Equal(t, 2, c.IndexAt(start))
}

func TestAdCarousel_SingleAdNeverRotates(t *testing.T) {
	start := time.Now()
	c := NewAdCarousel([]models.Advertisement{{ID: "a"}}, start)
	assert.Equal(t, 0, c.IndexAt(start.Add(time.Hour)))

	empty := NewAdCarousel(nil, start)
	empty.Select(3, start)
	assert.Equal(t, 0, empty.IndexAt(start))
	assert.Empty(t, plain().Advertisement(empty, start))
}

func TestAdvertisement(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ads := []models.Advertisement{
		{Title: "Diwali Sale", Media: "https://cdn/d.jpg", MediaType: models.MediaTypeImage},
		{Media: "https://cdn/n.mp4", MediaType: models.MediaTypeVideo, RedirectLink: "https://shop/new"},
	}
	c := NewAdCarousel(ads, start)
	r := plain()

	assert.Equal(t, "Diwali Sale\n  Image: https://cdn/d.jpg\n  ● ○", r.Advertisement(c, start))
	assert.Equal(t, "  Video: https://cdn/n.mp4\n  Learn More: https://shop/new\n  ○ ●", r.Advertisement(c, start.Add(5*time.Second)))
}

func TestCallOptionsAndFooter(t *testing.T) {
	assert.Equal(t, "+91 86088 07283", FormatPhone("8608807283"))
	assert.Equal(t, "+91 123", FormatPhone("123"))
	assert.Equal(t, "tel:+919943025989", TelURI("9943025989"))

	r := plain()
	opts := r.CallOptions()
	require.Contains(t, opts, "Select a number to call")
	assert.Contains(t, opts, "1. Primary Contact    +91 86088 07283  tel:+918608807283")
	assert.Contains(t, opts, "2. Secondary Contact  +91 99430 25989")

	footer := r.Footer(2025)
	assert.Contains(t, footer, "Phone: +91 86088 07283, +91 99430 25989")
	assert.Contains(t, footer, "Email: harifurniturekhm@gmail.com")
	assert.Contains(t, footer, "© 2025 Hari Furniture & Co. All rights reserved.")
}

func TestNotifications(t *testing.T) {
	r := plain()
	assert.Equal(t, "✔ Order placed successfully!", r.Success("Order placed successfully!"))
	assert.Equal(t, "✖ Failed to place order", r.Error("Failed to place order"))
	assert.NotPanics(t, func() { _ = NewRenderer(DefaultStyles()).Success("ok") })
}
