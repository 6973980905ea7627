package models

import "encoding/json"

// Product category placement as reported by the backend.
const (
	CategoryTypeCategory    = "category"
	CategoryTypeNonCategory = "non-category"
)

type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Product struct {
	ID                  ID              `json:"_id"`
	Name                string          `json:"name"`
	Price               float64         `json:"price"`
	Images              []string        `json:"images,omitempty"`
	Specifications      []Specification `json:"specifications,omitempty"`
	ShortDescription    string          `json:"shortDescription,omitempty"`
	DetailedDescription string          `json:"detailedDescription,omitempty"`
	Stock               int             `json:"stock"`
	CategoryType        string          `json:"categoryType,omitempty"`
	Category            CategoryRef     `json:"category"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool { return p.Stock > 0 }

// ProductRef is a product reference that arrives either as an id or as an
// embedded (populated) product document.
type ProductRef struct {
	ID      ID
	Product *Product
}

func (r *ProductRef) UnmarshalJSON(b []byte) error {
	var p Product
	id, embedded, err := decodeRef(b, &p)
	if err != nil {
		return err
	}
	r.ID = id
	r.Product = nil
	if embedded {
		r.Product = &p
	}
	return nil
}

func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.Product != nil {
		return json.Marshal(r.Product)
	}
	return json.Marshal(r.ID)
}

type Category struct {
	ID    ID     `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// CategoryRef mirrors ProductRef for product.category.
type CategoryRef struct {
	ID       ID
	Category *Category
}

func (r *CategoryRef) UnmarshalJSON(b []byte) error {
	var c Category
	id, embedded, err := decodeRef(b, &c)
	if err != nil {
		return err
	}
	r.ID = id
	r.Category = nil
	if embedded {
		r.Category = &c
	}
	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Category != nil {
		return json.Marshal(r.Category)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
