package nav

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/portfolio/internal/errresponse"
	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

// API serves the site navigation with the entry matching the current path
// marked active.
type API struct {
	links  []model.NavLink
	logger *zap.SugaredLogger
}

func NewAPI(links []model.NavLink, logger *zap.SugaredLogger) *API {
	return &API{links: links, logger: logger}
}

// Active returns the path of the link that should be highlighted for the
// current request path, or "" when nothing matches. An exact match wins;
// otherwise the longest link whose path is a segment-boundary prefix of the
// request path matches, so /articles/3 highlights /articles. The root link
// never matches by prefix.
func Active(links []model.NavLink, path string) string {
	path = normalize(path)

	best := ""
	for _, l := range links {
		lp := normalize(l.Path)
		if lp == path {
			return lp
		}
		if lp != "/" && strings.HasPrefix(path, lp+"/") && len(lp) > len(best) {
			best = lp
		}
	}

	return best
}

func normalize(p string) string {
	if p == "" {
		return "/"
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}

	return p
}

// LinkResponse is one navigation entry with its computed highlight state.
type LinkResponse struct {
	*model.NavLink
	Active bool `json:"active"`
}

func (rd *LinkResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// Links answers GET /navigation?path=... with the full link list; exactly the
// entries matching Active carry active=true (zero or one entry in practice).
func (a *API) Links(w http.ResponseWriter, r *http.Request) {
	active := Active(a.links, r.URL.Query().Get("path"))

	list := []render.Renderer{}
	for i := range a.links {
		list = append(list, &LinkResponse{
			NavLink: &a.links[i],
			Active:  normalize(a.links[i].Path) == active && active != "",
		})
	}

	if err := render.RenderList(w, r, list); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}
