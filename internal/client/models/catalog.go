package models

type Brand struct {
	ID   ID     `json:"_id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Advertisement media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Advertisement struct {
	ID           ID     `json:"_id"`
	Title        string `json:"title,omitempty"`
	Media        string `json:"media"`
	MediaType    string `json:"mediaType"`
	RedirectLink string `json:"redirectLink,omitempty"`
}

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	Product  ID     `json:"product"`
	Address  string `json:"address"`
	Quantity int    `json:"quantity"`
}

// QueryRequest is the body of POST /queries (contact form).
type QueryRequest struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}
