package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

const (
	PlaceholderCardImage   = "https://via.placeholder.com/400x300?text=No+Image"
	PlaceholderDetailImage = "https://via.placeholder.com/600x450?text=No+Image"

	cardSpecLimit = 2
)

type Renderer struct {
	st Styles
}

func NewRenderer(st Styles) *Renderer {
	return &Renderer{st: st}
}

func (r *Renderer) heart(liked bool) string {
	if liked {
		return r.st.Heart.Render("♥")
	}
	return "♡"
}

func (r *Renderer) stars(average float64) string {
	n := StarCount(average)
	return r.st.Star.Render(strings.Repeat("★", n)) + strings.Repeat("☆", MaxStars-n)
}

func (r *Renderer) offerBadge(o *models.Offer) string {
	return r.st.Badge.Render(fmt.Sprintf(" %g%% OFF ", o.OfferPercent))
}

func (r *Renderer) price(p models.Product, o *models.Offer) string {
	if models.HasActiveOffer(o) {
		return r.st.Price.Render(FormatPrice(o.DiscountedPrice)) + "  " + r.st.StrikePrice.Render(FormatPrice(p.Price))
	}
	return r.st.Price.Render(FormatPrice(p.Price))
}

// ProductCard renders the list-view summary of a product. reviews may be nil.
func (r *Renderer) ProductCard(p models.Product, o *models.Offer, reviews *models.ReviewSummary, liked bool) string {
	var b strings.Builder

	b.WriteString(r.heart(liked) + " " + r.st.Title.Render(Sanitize(p.Name)))
	if models.HasActiveOffer(o) {
		b.WriteString("  " + r.offerBadge(o))
	}
	b.WriteString("\n")

	if len(p.Specifications) > 0 {
		specs := p.Specifications[:min(len(p.Specifications), cardSpecLimit)]
		parts := make([]string, 0, len(specs))
		for _, s := range specs {
			parts = append(parts, Sanitize(s.Name)+": "+Sanitize(s.Value))
		}
		b.WriteString("  " + r.st.Muted.Render(strings.Join(parts, " | ")) + "\n")
	}
	if d := Sanitize(p.ShortDescription); d != "" {
		b.WriteString("  " + d + "\n")
	}

	var avg float64
	var count int
	if reviews != nil {
		avg, count = reviews.AverageRating, reviews.Count
	}
	fmt.Fprintf(&b, "  %s (%d)\n", r.stars(avg), count)
	b.WriteString("  " + r.price(p, o) + "\n")
	b.WriteString("  " + r.st.Muted.Render("id: "+p.ID.String()))
	return b.String()
}

// ProductList renders cards separated by blank lines, or empty when
// nothing matched.
func (r *Renderer) ProductList(products []models.Product, offers []models.Offer, reviews map[models.ID]models.ReviewSummary, liked func(models.ID) bool) string {
	if len(products) == 0 {
		return r.st.Muted.Render("No products found")
	}
	cards := make([]string, 0, len(products))
	for _, p := range products {
		o, _ := models.FindOffer(offers, p.ID)
		var summary *models.ReviewSummary
		if s, ok := reviews[p.ID]; ok {
			summary = &s
		}
		cards = append(cards, r.ProductCard(p, o, summary, liked(p.ID)))
	}
	return strings.Join(cards, "\n\n")
}

// ProductDetail renders the full product page.
func (r *Renderer) ProductDetail(p models.Product, o *models.Offer, reviews models.ReviewSummary, liked bool) string {
	var b strings.Builder

	b.WriteString(r.st.Title.Render(Sanitize(p.Name)))
	if models.HasActiveOffer(o) {
		b.WriteString("  " + r.offerBadge(o))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %.1f (%d reviews)\n", r.stars(reviews.AverageRating), reviews.AverageRating, reviews.Count)
	b.WriteString(r.price(p, o) + "\n")
	if p.InStock() {
		b.WriteString(r.st.InStock.Render("In Stock") + "\n")
	} else {
		b.WriteString(r.st.OutOfStock.Render("Out of Stock") + "\n")
	}

	if len(p.Specifications) > 0 {
		b.WriteString("\nSpecifications\n")
		for _, s := range p.Specifications {
			fmt.Fprintf(&b, "  %s: %s\n", Sanitize(s.Name), Sanitize(s.Value))
		}
	}
	if d := Sanitize(p.DetailedDescription); d != "" {
		b.WriteString("\nDescription\n  " + d + "\n")
	} else if d := Sanitize(p.ShortDescription); d != "" {
		b.WriteString("\n" + d + "\n")
	}

	b.WriteString("\nImages\n")
	if len(p.Images) == 0 {
		b.WriteString("  " + PlaceholderDetailImage + "\n")
	}
	for i, img := range p.Images {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, img)
	}

	b.WriteString("\n" + r.heart(liked) + " ")
	if liked {
		b.WriteString("Liked")
	} else {
		b.WriteString("Not liked")
	}
	b.WriteString("\n\n" + r.Reviews(reviews))
	return b.String()
}

// Reviews renders the review list of a product.
func (r *Renderer) Reviews(summary models.ReviewSummary) string {
	if len(summary.Reviews) == 0 {
		return r.st.Muted.Render("No reviews yet. Be the first to review!")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Customer Reviews (%d)\n", summary.Count)
	for _, rv := range summary.Reviews {
		name := Sanitize(rv.UserName)
		if name == "" {
			name = "Anonymous"
		}
		fmt.Fprintf(&b, "  %s %s", r.stars(float64(rv.Rating)), name)
		if !rv.CreatedAt.IsZero() {
			b.WriteString(" " + r.st.Muted.Render(rv.CreatedAt.Format("02 Jan 2006")))
		}
		b.WriteString("\n")
		if c := Sanitize(rv.Comment); c != "" {
			b.WriteString("    " + c + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// OrderTotal renders the running total shown on the order form.
func (r *Renderer) OrderTotal(p models.Product, o *models.Offer, quantity int) string {
	return fmt.Sprintf("Total: %s", r.st.Price.Render(FormatPrice(models.OrderTotal(p, o, quantity))))
}
