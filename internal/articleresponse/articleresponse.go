package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/portfolio/internal/authorpayload"
	"github.com/SergeyParamoshkin/portfolio/internal/markdown"
	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

// ArticleResponse is the list-item payload for the Article metadata record.
// It is a pure projection: every metadata field passes through unchanged.
type ArticleResponse struct {
	*model.Article
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewArticleListResponse(articles []model.Article) []render.Renderer {
	list := []render.Renderer{}
	for i := range articles {
		list = append(list, NewArticleResponse(&articles[i]))
	}

	return list
}

// ArticleDetailResponse is the detail payload: the metadata record plus the
// body rendered to an HTML fragment and the author block for the page chrome.
// BodyStatus distinguishes a body rendered from its markdown file from the
// fallback substitute.
type ArticleDetailResponse struct {
	*model.Article

	Author *authorpayload.AuthorPayload `json:"author,omitempty"`

	BodyHTML   string          `json:"bodyHtml"`
	BodyStatus markdown.Status `json:"bodyStatus"`
}

func NewArticleDetailResponse(article *model.Article, author *model.Person, body markdown.Result) *ArticleDetailResponse {
	resp := &ArticleDetailResponse{
		Article:    article,
		BodyHTML:   body.HTML,
		BodyStatus: body.Status,
	}

	if author != nil {
		resp.Author = authorpayload.NewAuthorPayloadResponse(author)
	}

	return resp
}

func (rd *ArticleDetailResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
