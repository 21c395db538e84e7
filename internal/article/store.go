package article

import (
	"errors"

	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

// ErrNotFound is returned when no metadata record carries the requested id.
var ErrNotFound = errors.New("article not found")

// Store holds the static article metadata list. The list is fixed at
// construction and never mutated, so lookups need no locking. The list is
// short, a linear scan is all the indexing it needs.
type Store struct {
	articles []model.Article
}

func NewStore(articles []model.Article) *Store {
	return &Store{articles: articles}
}

// List returns the metadata records in their configured order.
func (s *Store) List() []model.Article {
	return s.articles
}

// Get returns the metadata record for id, or ErrNotFound.
func (s *Store) Get(id int) (*model.Article, error) {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return &s.articles[i], nil
		}
	}

	return nil, ErrNotFound
}
