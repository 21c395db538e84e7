package site

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/portfolio/internal/content"
	"github.com/SergeyParamoshkin/portfolio/internal/errresponse"
	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

// API serves the static site content: owner profile, work history, social
// links and the newsletter block. Every handler is a pure projection of the
// content module.
type API struct {
	site   *content.Site
	logger *zap.SugaredLogger
}

func NewAPI(site *content.Site, logger *zap.SugaredLogger) *API {
	return &API{site: site, logger: logger}
}

// ProfileResponse carries the Person record plus the derived full name.
type ProfileResponse struct {
	*model.Person
	Name string `json:"name"`
}

func (rd *ProfileResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Name = rd.FullName()

	return nil
}

func (a *API) Profile(w http.ResponseWriter, r *http.Request) {
	if err := render.Render(w, r, &ProfileResponse{Person: &a.site.Person}); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}

type ExperienceResponse struct {
	*model.Experience
}

func (rd *ExperienceResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (a *API) Experience(w http.ResponseWriter, r *http.Request) {
	list := []render.Renderer{}
	for i := range a.site.Experience {
		list = append(list, &ExperienceResponse{Experience: &a.site.Experience[i]})
	}

	if err := render.RenderList(w, r, list); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}

type SocialResponse struct {
	*model.SocialLink
}

func (rd *SocialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (a *API) Social(w http.ResponseWriter, r *http.Request) {
	list := []render.Renderer{}
	for i := range a.site.Social {
		list = append(list, &SocialResponse{SocialLink: &a.site.Social[i]})
	}

	if err := render.RenderList(w, r, list); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}

// NewsletterResponse exposes the contact block actions as ready-to-use URLs.
type NewsletterResponse struct {
	*model.Newsletter
	Mailto string `json:"mailto"`
}

func (rd *NewsletterResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Mailto = "mailto:" + rd.Email

	return nil
}

// Newsletter serves the contact block. The block is a build-time toggle; when
// disabled it is absent, not empty.
func (a *API) Newsletter(w http.ResponseWriter, r *http.Request) {
	if !a.site.Newsletter.Enabled {
		if err := render.Render(w, r, errresponse.ErrNotFound); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}

	if err := render.Render(w, r, &NewsletterResponse{Newsletter: &a.site.Newsletter}); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}
