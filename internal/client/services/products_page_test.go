package services

import (
	"testing"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage() *ProductsPage {
	living := models.Category{ID: "c1", Name: "Living"}
	return &ProductsPage{
		Products: []models.Product{
			{ID: "p1", Name: "Teak Sofa", CategoryType: models.CategoryTypeCategory, Category: models.CategoryRef{ID: "c1", Category: &living}},
			{ID: "p2", Name: "Sofa Cushion", CategoryType: models.CategoryTypeCategory, Category: models.CategoryRef{ID: "c2"}},
			{ID: "p3", Name: "Office Chair", CategoryType: models.CategoryTypeNonCategory},
			{ID: "p4", Name: "Bean Bag", CategoryType: models.CategoryTypeCategory, Category: models.CategoryRef{ID: "c9"}},
		},
		Categories: []models.Category{living, {ID: "c2", Name: "Decor"}, {ID: "c3", Name: "Empty"}},
		Offers:     []models.Offer{{ID: "o1", Product: models.ProductRef{ID: "p3"}, IsActive: true, DiscountedPrice: 10}},
		Liked:      NewLikedSet([]models.ID{"p3"}),
		LikedProducts: []models.Product{
			{ID: "p3", Name: "Office Chair"},
		},
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestParseTab(t *testing.T) {
	for _, s := range []string{"all", "Category", "non-category", "LIKED"} {
		_, err := ParseTab(s)
		require.NoError(t, err, s)
	}
	_, err := ParseTab("sale")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestProductsPage_List(t *testing.T) {
	p := samplePage()

	tests := []struct {
		tab   Tab
		query string
		want  []string
	}{
		{TabAll, "", []string{"Teak Sofa", "Sofa Cushion", "Office Chair", "Bean Bag"}},
		{TabAll, "SOFA", []string{"Teak Sofa", "Sofa Cushion"}},
		{TabCategory, "", []string{"Teak Sofa", "Sofa Cushion"}},
		{TabNonCategory, "", []string{"Office Chair"}},
		{TabNonCategory, "sofa", []string{}},
		{TabLiked, "chair", []string{"Office Chair"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tab)+"/"+tt.query, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, names(p.List(tt.tab, tt.query))); diff != "" {
				t.Errorf("List(%s, %q) mismatch (-want +got):\n%s", tt.tab, tt.query, diff)
			}
		})
	}
}

func TestProductsPage_CategoryGroups(t *testing.T) {
	p := samplePage()

	groups := p.CategoryGroups("")
	require.Len(t, groups, 2)
	assert.Equal(t, "Living", groups[0].Category.Name)
	assert.Equal(t, []string{"Teak Sofa"}, names(groups[0].Products))
	assert.Equal(t, "Decor", groups[1].Category.Name)

	groups = p.CategoryGroups("teak")
	require.Len(t, groups, 1)
	assert.Equal(t, "Living", groups[0].Category.Name)
}

func TestProductsPage_CountIgnoresSearch(t *testing.T) {
	p := samplePage()
	assert.Equal(t, 4, p.Count(TabAll))
	assert.Equal(t, 3, p.Count(TabCategory))
	assert.Equal(t, 1, p.Count(TabNonCategory))
	assert.Equal(t, 1, p.Count(TabLiked))
}

func TestProductsPage_ApplyLike(t *testing.T) {
	p := samplePage()

	p.ApplyLike("p1", true)
	p.ApplyLike("p1", true)
	assert.True(t, p.Liked.Has("p1"))
	assert.Equal(t, []string{"Office Chair", "Teak Sofa"}, names(p.LikedProducts))

	p.ApplyLike("p3", false)
	assert.False(t, p.Liked.Has("p3"))
	assert.Equal(t, []string{"Teak Sofa"}, names(p.LikedProducts))
}

func TestProductsPage_Offer(t *testing.T) {
	p := samplePage()
	require.NotNil(t, p.Offer("p3"))
	assert.Nil(t, p.Offer("p1"))
}
