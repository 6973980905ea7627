package models

import "time"

type Review struct {
	ID        ID        `json:"_id"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewSummary is the payload of GET /reviews/:productId.
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	Count         int      `json:"count"`
}

// ReviewRequest is the body of POST /reviews.
type ReviewRequest struct {
	Product ID     `json:"product"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
