package authorpayload

import (
	"net/http"

	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

//--
// Response payload for the article author.
//
// The payload embeds the Person content record and adds presentation-only
// fields computed at render time.
//--

type AuthorPayload struct {
	*model.Person
	Name string `json:"name"`
	Role string `json:"authorRole"`
}

func NewAuthorPayloadResponse(person *model.Person) *AuthorPayload {
	return &AuthorPayload{Person: person}
}

func (a *AuthorPayload) Render(w http.ResponseWriter, r *http.Request) error {
	// This is a single-author site, the owner wrote everything.
	a.Name = a.FullName()
	a.Role = "owner"

	return nil
}
