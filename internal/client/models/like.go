package models

// Like links an anonymous visitor to a product.
type Like struct {
	ID        ID         `json:"_id"`
	Product   ProductRef `json:"product"`
	VisitorID string     `json:"visitorId"`
}

// LikeRequest is the body of POST /likes.
type LikeRequest struct {
	Product   ID     `json:"product"`
	VisitorID string `json:"visitorId"`
}

// LikeResult tells whether the product is liked after a toggle.
type LikeResult struct {
	Liked bool `json:"liked"`
}
