package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/portfolio/internal/errresponse"
	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

type ctxKey int8

const ctxKeyArticle ctxKey = iota

// Ctx middleware loads the Article metadata record named by the articleID URL
// parameter onto the request context. An id with no metadata entry stops here
// with a 404; in particular no filesystem access happens for unknown ids.
func (a *API) Ctx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "articleID"))
		if err != nil {
			if err := render.Render(w, r, errresponse.ErrNotFound); err != nil {
				a.logger.Errorw(err.Error())
			}

			return
		}

		art, err := a.store.Get(id)
		if err != nil {
			if err := render.Render(w, r, errresponse.ErrNotFound); err != nil {
				a.logger.Errorw(err.Error())
			}

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticle, art)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func fromCtx(ctx context.Context) *model.Article {
	// The handlers below Ctx can assume the article is present. If it is not,
	// the type assertion panics and the Recoverer middleware answers with 500.
	return ctx.Value(ctxKeyArticle).(*model.Article)
}
