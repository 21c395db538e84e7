package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/portfolio/internal/articleresponse"
	"github.com/SergeyParamoshkin/portfolio/internal/errresponse"
	"github.com/SergeyParamoshkin/portfolio/internal/markdown"
	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

// API serves the articles resource: the metadata index and the rendered
// detail page.
type API struct {
	store     *Store
	loader    *markdown.Loader
	author    *model.Person
	logger    *zap.SugaredLogger
	fallbacks metric.Int64Counter
}

func NewAPI(store *Store, loader *markdown.Loader, author *model.Person, logger *zap.SugaredLogger) *API {
	meter := global.Meter("portfolio")

	return &API{
		store:  store,
		loader: loader,
		author: author,
		logger: logger,
		fallbacks: metric.Must(meter).NewInt64Counter(
			"articles/render/fallback_count",
			metric.WithDescription("Count of article bodies substituted with the fallback text"),
		),
	}
}

// Routes mounts the articles resource.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", a.List)

	r.Route("/{articleID:[0-9]+}", func(r chi.Router) {
		r.Use(a.Ctx) // Load the *model.Article on the request context
		r.Get("/", a.Get)
	})

	return r
}

// List renders the static metadata list. An empty list is a valid, empty
// response, not an error.
func (a *API) List(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(a.store.List())); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}

// Get returns the article metadata together with its body rendered to HTML.
// A missing or unreadable markdown file substitutes the fallback text and the
// response still succeeds; only a markdown engine failure is reported as an
// error.
func (a *API) Get(w http.ResponseWriter, r *http.Request) {
	art := fromCtx(r.Context())

	res, err := a.loader.Load(art.ID)
	if err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}

	if res.Status == markdown.StatusFallback {
		a.logger.Infow("article body fallback", "article_id", art.ID, "path", a.loader.Path(art.ID))
		a.fallbacks.Add(r.Context(), 1, attribute.Int("article.id", art.ID))
	}

	if err := render.Render(w, r, articleresponse.NewArticleDetailResponse(art, a.author, res)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}
