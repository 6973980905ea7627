package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

// Tab selects a product list on the products page.
type Tab string

const (
	TabAll         Tab = "all"
	TabCategory    Tab = "category"
	TabNonCategory Tab = "non-category"
	TabLiked       Tab = "liked"
)

var Tabs = []Tab{TabAll, TabCategory, TabNonCategory, TabLiked}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q: %w", s, ErrInvalidInput)
}

type ProductsPage struct {
	Products      []models.Product
	Offers        []models.Offer
	Categories    []models.Category
	Liked         LikedSet
	LikedProducts []models.Product
	Reviews       map[models.ID]models.ReviewSummary
}

// CategoryGroup is one heading of the "category" tab.
type CategoryGroup struct {
	Category models.Category
	Products []models.Product
}

// MatchesSearch reports whether the product name contains query, ignoring case.
func MatchesSearch(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

func filterBySearch(products []models.Product, query string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if MatchesSearch(p, query) {
			out = append(out, p)
		}
	}
	return out
}

func byCategoryType(products []models.Product, categoryType string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryType == categoryType {
			out = append(out, p)
		}
	}
	return out
}

// List returns the products shown under tab, filtered by query. The
// category tab yields its groups flattened in category order.
func (p *ProductsPage) List(tab Tab, query string) []models.Product {
	switch tab {
	case TabCategory:
		var out []models.Product
		for _, g := range p.CategoryGroups(query) {
			out = append(out, g.Products...)
		}
		return out
	case TabNonCategory:
		return filterBySearch(byCategoryType(p.Products, models.CategoryTypeNonCategory), query)
	case TabLiked:
		return filterBySearch(p.LikedProducts, query)
	default:
		return filterBySearch(p.Products, query)
	}
}

// CategoryGroups groups categorised products under their category, in the
// order categories were returned. Groups left empty by query are omitted.
func (p *ProductsPage) CategoryGroups(query string) []CategoryGroup {
	categorised := byCategoryType(p.Products, models.CategoryTypeCategory)
	var groups []CategoryGroup
	for _, c := range p.Categories {
		var members []models.Product
		for _, prod := range categorised {
			if prod.Category.ID == c.ID && MatchesSearch(prod, query) {
				members = append(members, prod)
			}
		}
		if len(members) > 0 {
			groups = append(groups, CategoryGroup{Category: c, Products: members})
		}
	}
	return groups
}

// Count is the badge shown next to a tab. It ignores the search query.
func (p *ProductsPage) Count(tab Tab) int {
	switch tab {
	case TabCategory:
		return len(byCategoryType(p.Products, models.CategoryTypeCategory))
	case TabNonCategory:
		return len(byCategoryType(p.Products, models.CategoryTypeNonCategory))
	case TabLiked:
		return len(p.LikedProducts)
	default:
		return len(p.Products)
	}
}

// Offer returns the offer for a product, if any.
func (p *ProductsPage) Offer(id models.ID) *models.Offer {
	o, _ := models.FindOffer(p.Offers, id)
	return o
}

// ApplyLike updates the liked projections with the server's toggle result.
func (p *ProductsPage) ApplyLike(id models.ID, liked bool) {
	p.Liked.Apply(id, liked)

	idx := -1
	for i, lp := range p.LikedProducts {
		if lp.ID == id {
			idx = i
			break
		}
	}
	switch {
	case liked && idx < 0:
		for _, prod := range p.Products {
			if prod.ID == id {
				p.LikedProducts = append(p.LikedProducts, prod)
				break
			}
		}
	case !liked && idx >= 0:
		p.LikedProducts = append(p.LikedProducts[:idx], p.LikedProducts[idx+1:]...)
	}
}
