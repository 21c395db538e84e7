package clock

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/portfolio/internal/errresponse"
)

// API serves the header clock.
type API struct {
	clock  *Clock
	logger *zap.SugaredLogger
}

func NewAPI(clock *Clock, logger *zap.SugaredLogger) *API {
	return &API{clock: clock, logger: logger}
}

type TimeResponse struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

func (rd *TimeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (a *API) Time(w http.ResponseWriter, r *http.Request) {
	resp := &TimeResponse{
		Time:     a.clock.Now(),
		Timezone: a.clock.Timezone(),
	}

	if err := render.Render(w, r, resp); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			a.logger.Errorw(err.Error())
		}

		return
	}
}
