package services

import "github.com/dmitrijs2005/harifurniture/internal/client/models"

// LikedSet is the set of product ids the visitor has liked.
type LikedSet map[models.ID]struct{}

func NewLikedSet(ids []models.ID) LikedSet {
	s := make(LikedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s LikedSet) Has(id models.ID) bool {
	_, ok := s[id]
	return ok
}

// Apply records the server's answer for id.
func (s LikedSet) Apply(id models.ID, liked bool) {
	if liked {
		s[id] = struct{}{}
		return
	}
	delete(s, id)
}
