package fakeapi

import "github.com/dmitrijs2005/harifurniture/internal/client/models"

// Seed data identifiers.
const (
	SofaID  models.ID = "p-sofa"
	TableID models.ID = "p-table"
	ChairID models.ID = "p-chair"
	LampID  models.ID = "p-lamp"

	LivingRoomID models.ID = "c-living"
	DiningID     models.ID = "c-dining"

	AshaCredential = "cred-asha"
	AshaToken      = "tok-asha"
	RaviCredential = "cred1"
	RaviToken      = "tok1"
)

// Seed replaces the server's data with a small furniture catalogue, two
// accounts (Asha has a phone, Ravi still needs one) and one active offer.
func (s *Server) Seed() {
	s.Lock()
	defer s.Unlock()

	living := models.Category{ID: LivingRoomID, Name: "Living Room"}
	dining := models.Category{ID: DiningID, Name: "Dining"}
	s.Categories = []models.Category{living, dining}

	s.Products = []models.Product{
		{
			ID: SofaID, Name: "Teak Wood Sofa", Price: 45000, Stock: 4,
			Images:           []string{"https://cdn.example/sofa.jpg"},
			ShortDescription: "Three seater in solid teak",
			Specifications: []models.Specification{
				{Name: "Material", Value: "Teak"},
				{Name: "Seats", Value: "3"},
				{Name: "Finish", Value: "Walnut"},
			},
			CategoryType: models.CategoryTypeCategory,
			Category:     models.CategoryRef{ID: LivingRoomID, Category: &living},
		},
		{
			ID: TableID, Name: "Oak Dining Table", Price: 30000, Stock: 2,
			CategoryType: models.CategoryTypeCategory,
			Category:     models.CategoryRef{ID: DiningID},
		},
		{
			ID: ChairID, Name: "Office Chair", Price: 7999, Stock: 0,
			CategoryType: models.CategoryTypeNonCategory,
		},
		{
			ID: LampID, Name: "Floor Lamp", Price: 2500, Stock: 10,
			CategoryType: models.CategoryTypeNonCategory,
		},
	}
	s.Featured = []models.ID{SofaID, ChairID}
	s.Offers = []models.Offer{
		{ID: "o-sofa", Product: models.ProductRef{ID: SofaID}, DiscountedPrice: 39999, OfferPercent: 11, IsActive: true},
		{ID: "o-table", Product: models.ProductRef{ID: TableID}, DiscountedPrice: 25000, OfferPercent: 17, IsActive: false},
	}
	s.Reviews = map[models.ID][]models.Review{
		SofaID: {
			{ID: "r1", UserName: "Meena", Rating: 5, Comment: "Excellent finish"},
			{ID: "r2", UserName: "Kumar", Rating: 4, Comment: "Comfortable"},
		},
	}
	s.Brands = []models.Brand{{ID: "b1", Name: "Godrej"}, {ID: "b2", Name: "Nilkamal"}}
	s.Advertisements = []models.Advertisement{
		{ID: "a1", Title: "Diwali Sale", Media: "https://cdn.example/diwali.jpg", MediaType: models.MediaTypeImage},
		{ID: "a2", Title: "New Arrivals", Media: "https://cdn.example/new.mp4", MediaType: models.MediaTypeVideo, RedirectLink: "/products"},
	}
	s.Accounts = map[string]Account{
		AshaCredential: {Token: AshaToken, User: models.UserProfile{ID: "u-asha", Name: "Asha", Email: "asha@example.com", Phone: "9876543210"}},
		RaviCredential: {Token: RaviToken, User: models.UserProfile{ID: "u-ravi", Name: "Ravi", Email: "ravi@example.com"}, NeedsPhone: true},
	}
}
