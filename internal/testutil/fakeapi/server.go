// Package fakeapi is an in-process storefront backend for tests.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Account is what the identity exchange returns for a known credential.
type Account struct {
	Token      string
	User       models.UserProfile
	NeedsPhone bool
}

// Server holds the fake backend's data. Exported fields may be edited
// directly by tests before requests are made; Lock is held by handlers.
type Server struct {
	sync.Mutex

	Products       []models.Product
	Featured       []models.ID
	Offers         []models.Offer
	Reviews        map[models.ID][]models.Review
	Brands         []models.Brand
	Categories     []models.Category
	Advertisements []models.Advertisement

	Accounts map[string]Account             // credential -> account
	Sessions map[string]*models.UserProfile // token -> user
	Likes    map[string]map[models.ID]bool  // visitor -> liked products

	Orders  []models.OrderRequest
	Queries []models.QueryRequest

	// Requests records "METHOD /path" for every call, without the /api prefix.
	Requests []string

	failures map[string]int
	srv      *httptest.Server
}

// New starts a server with no data.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		Reviews:  make(map[models.ID][]models.Review),
		Accounts: make(map[string]Account),
		Sessions: make(map[string]*models.UserProfile),
		Likes:    make(map[string]map[models.ID]bool),
		failures: make(map[string]int),
	}
	s.srv = httptest.NewServer(s.routes())
	t.Cleanup(s.srv.Close)
	return s
}

// NewSeeded starts a server with the standard test catalogue.
func NewSeeded(t testing.TB) *Server {
	s := New(t)
	s.Seed()
	return s
}

// URL is the API base URL ("http://127.0.0.1:port/api").
func (s *Server) URL() string { return s.srv.URL + "/api" }

func (s *Server) Client() *http.Client { return s.srv.Client() }

// Fail makes every request matching "METHOD /path" answer with status.
func (s *Server) Fail(route string, status int) {
	s.Lock()
	defer s.Unlock()
	s.failures[route] = status
}

func (s *Server) Heal(route string) {
	s.Lock()
	defer s.Unlock()
	delete(s.failures, route)
}

// SignIn registers token as a valid session for user.
func (s *Server) SignIn(token string, user models.UserProfile) {
	s.Lock()
	defer s.Unlock()
	u := user
	s.Sessions[token] = &u
}

// RequestLog returns a copy of the recorded requests.
func (s *Server) RequestLog() []string {
	s.Lock()
	defer s.Unlock()
	return append([]string(nil), s.Requests...)
}

func (s *Server) PlacedOrders() []models.OrderRequest {
	s.Lock()
	defer s.Unlock()
	return append([]models.OrderRequest(nil), s.Orders...)
}

func (s *Server) SentQueries() []models.QueryRequest {
	s.Lock()
	defer s.Unlock()
	return append([]models.QueryRequest(nil), s.Queries...)
}

// RevokeToken makes token unknown, as if it expired server-side.
func (s *Server) RevokeToken(token string) {
	s.Lock()
	defer s.Unlock()
	delete(s.Sessions, token)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Get("/user-auth/verify", s.verify)
		r.Post("/user-auth/google-login", s.googleLogin)
		r.Put("/user-auth/update-profile", s.updateProfile)

		r.Get("/products", s.listProducts)
		r.Get("/products/featured", s.featuredProducts)
		r.Get("/products/{id}", s.getProduct)
		r.Get("/offers/active", s.activeOffers)

		r.Get("/reviews/{productID}", s.productReviews)
		r.Post("/reviews", s.createReview)

		r.Get("/likes/check", s.likedIDs)
		r.Get("/likes/visitor/{visitorID}", s.visitorLikes)
		r.Post("/likes", s.toggleLike)

		r.Post("/orders", s.createOrder)
		r.Post("/queries", s.createQuery)

		r.Get("/brands", s.listBrands)
		r.Get("/categories", s.listCategories)
		r.Get("/advertisements/active", s.activeAdvertisements)
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
		s.Lock()
		s.Requests = append(s.Requests, key)
		status, fail := s.failures[key]
		s.Unlock()
		if fail {
			writeError(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authorize returns the user bound to the bearer token. Callers hold the lock.
func (s *Server) authorize(r *http.Request) (*models.UserProfile, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return nil, false
	}
	u, ok := s.Sessions[token]
	return u, ok
}

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()
	u, ok := s.authorize(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) googleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.Lock()
	defer s.Unlock()
	acc, ok := s.Accounts[in.Credential]
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid Google credential")
		return
	}
	u := acc.User
	s.Sessions[acc.Token] = &u
	writeJSON(w, http.StatusOK, map[string]any{
		"token":      acc.Token,
		"user":       u,
		"needsPhone": acc.NeedsPhone,
	})
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.Lock()
	defer s.Unlock()
	u, ok := s.authorize(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	name, phone := strings.TrimSpace(in.Name), strings.TrimSpace(in.Phone)
	if name == "" || len(phone) < 10 {
		writeError(w, http.StatusBadRequest, "Name and a valid phone number are required")
		return
	}
	u.Name, u.Phone = name, phone
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, s.Products)
}

func (s *Server) featuredProducts(w http.ResponseWriter, _ *http.Request) {
	s.Lock()
	defer s.Unlock()
	out := []models.Product{}
	for _, id := range s.Featured {
		if p, ok := s.product(id); ok {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()
	p, ok := s.product(models.ID(chi.URLParam(r, "id")))
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) product(id models.ID) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Server) activeOffers(w http.ResponseWriter, _ *http.Request) {
	s.Lock()
	defer s.Unlock()
	out := []models.Offer{}
	for _, o := range s.Offers {
		if o.IsActive {
			out = append(out, o)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) productReviews(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()
	reviews := s.Reviews[models.ID(chi.URLParam(r, "productID"))]
	sum := models.ReviewSummary{Reviews: append([]models.Review{}, reviews...), Count: len(reviews)}
	if len(reviews) > 0 {
		total := 0
		for _, rv := range reviews {
			total += rv.Rating
		}
		sum.AverageRating = float64(total) / float64(len(reviews))
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.Lock()
	defer s.Unlock()
	u, ok := s.authorize(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}
	if in.Rating < 1 || in.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	rv := models.Review{
		ID:        models.ID("r" + string(in.Product) + time.Now().Format("150405.000000")),
		UserName:  u.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}
	s.Reviews[in.Product] = append(s.Reviews[in.Product], rv)
	writeJSON(w, http.StatusCreated, rv)
}

func (s *Server) likedIDs(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()
	out := []models.ID{}
	for _, p := range s.Products {
		if s.Likes[r.URL.Query().Get("visitorId")][p.ID] {
			out = append(out, p.ID)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) visitorLikes(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()
	visitor := chi.URLParam(r, "visitorID")
	out := []models.Like{}
	for _, p := range s.Products {
		if s.Likes[visitor][p.ID] {
			prod := p
			out = append(out, models.Like{
				ID:        models.ID("l" + string(p.ID)),
				Product:   models.ProductRef{ID: p.ID, Product: &prod},
				VisitorID: visitor,
			})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) toggleLike(w http.ResponseWriter, r *http.Request) {
	var in models.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.VisitorID == "" || in.Product == "" {
		writeError(w, http.StatusBadRequest, "Product and visitorId are required")
		return
	}
	s.Lock()
	defer s.Unlock()
	liked := s.Likes[in.VisitorID]
	if liked == nil {
		liked = make(map[models.ID]bool)
		s.Likes[in.VisitorID] = liked
	}
	if liked[in.Product] {
		delete(liked, in.Product)
	} else {
		liked[in.Product] = true
	}
	writeJSON(w, http.StatusOK, models.LikeResult{Liked: liked[in.Product]})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var in models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.Lock()
	defer s.Unlock()
	if _, ok := s.authorize(r); !ok {
		writeError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}
	if strings.TrimSpace(in.Address) == "" || in.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "Address and quantity are required")
		return
	}
	if _, ok := s.product(in.Product); !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	s.Orders = append(s.Orders, in)
	writeJSON(w, http.StatusCreated, map[string]any{"_id": "ord" + string(in.Product), "status": "pending"})
}

func (s *Server) createQuery(w http.ResponseWriter, r *http.Request) {
	var in models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Name == "" || in.Mobile == "" || in.Message == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	s.Lock()
	defer s.Unlock()
	s.Queries = append(s.Queries, in)
	writeJSON(w, http.StatusCreated, in)
}

func (s *Server) listBrands(w http.ResponseWriter, _ *http.Request) {
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, s.Brands)
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, s.Categories)
}

func (s *Server) activeAdvertisements(w http.ResponseWriter, _ *http.Request) {
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, s.Advertisements)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
