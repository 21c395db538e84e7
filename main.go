//
// Portfolio
// =========
// HTTP content service for a personal portfolio and blog. The site content
// (bio, work history, social links, article metadata) is a static content
// module; article bodies live as markdown files on disk, keyed by id, and are
// rendered to HTML per request.
//
// Boot the server:
// ----------------
// $ go run .
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/
// portfolio.
//
// $ curl http://localhost:3333/articles
// [{"id":0,"title":"Building Scalable React Applications",...}]
//
// $ curl http://localhost:3333/articles/0
// {"id":0,...,"bodyHtml":"<h1>Hello</h1>\n","bodyStatus":"rendered"}
//
// $ curl http://localhost:3333/articles/999
// {"status":"Resource not found."}
//
// $ curl http://localhost:3333/time
// {"time":"21:15:42 MSK","timezone":"Europe/Moscow"}
//
// Passing -routes generates markdown docs for the router.
//
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"

	"github.com/SergeyParamoshkin/portfolio/internal/article"
	"github.com/SergeyParamoshkin/portfolio/internal/clock"
	"github.com/SergeyParamoshkin/portfolio/internal/content"
	"github.com/SergeyParamoshkin/portfolio/internal/markdown"
	"github.com/SergeyParamoshkin/portfolio/internal/nav"
	"github.com/SergeyParamoshkin/portfolio/internal/site"
)

const ServiceName = "portfolio"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

type App struct {
	sugarLogger *zap.SugaredLogger
	config      Config
}

// nolint
func main() {
	loadDotenv()

	// nolint
	var (
		routes      = flag.Bool("routes", getEnvBool(ServiceName+"_routes", false), "Generate router documentation")
		addr        = flag.String("addr", getEnv(ServiceName+"_ADDR", ":3333"), "application port")
		diagPort    = flag.String("diag_addr", getEnv(ServiceName+"_DIAG_ADDR", ":9999"), "diag port")
		articlesDir = flag.String("articles_dir", getEnv(ServiceName+"_ARTICLES_DIR", "./articles"), "directory with <id>.md article bodies")
		contentFile = flag.String("content", getEnv(ServiceName+"_CONTENT_FILE", ""), "optional YAML site content file")
		timezone    = flag.String("tz", getEnv(ServiceName+"_TZ", "Europe/Moscow"), "header clock time zone")
		newsletter  = flag.Bool("newsletter", getEnvBool(ServiceName+"_NEWSLETTER", true), "show the newsletter block")
	)

	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	a := App{
		sugarLogger: sugar,
		config: Config{
			Addr:        *addr,
			DiagAddr:    *diagPort,
			ArticlesDir: *articlesDir,
			ContentFile: *contentFile,
			Timezone:    *timezone,
			Newsletter:  *newsletter,
		},
	}

	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(config, c)
	if err != nil {
		a.sugarLogger.Panicf("failed to initialize prometheus exporter %v", err)
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	labels := []attribute.KeyValue{
		attribute.String("status", "200")}
	RequestCompletedCount := metric.Must(meter).NewInt64Counter(
		"http/server/completed_count",
		metric.WithDescription("Count of completed requests, by HTTP method and response status"),
	).Bind(labels...)
	defer RequestCompletedCount.Unbind()

	siteContent := content.Default()
	if a.config.ContentFile != "" {
		siteContent, err = content.Load(a.config.ContentFile)
		if err != nil {
			a.sugarLogger.Panicf("failed to load site content %v", err)
		}
	}
	siteContent.Newsletter.Enabled = siteContent.Newsletter.Enabled && a.config.Newsletter

	wallClock, err := clock.New(a.config.Timezone, time.Second)
	if err != nil {
		a.sugarLogger.Panicf("failed to initialize clock %v", err)
	}
	wallClock.Start()
	defer wallClock.Stop()

	articleAPI := article.NewAPI(
		article.NewStore(siteContent.Articles),
		markdown.NewLoader(a.config.ArticlesDir, markdown.NewRenderer()),
		&siteContent.Person,
		sugar,
	)
	siteAPI := site.NewAPI(siteContent, sugar)
	navAPI := nav.NewAPI(siteContent.Navigation, sugar)
	clockAPI := clock.NewAPI(wallClock, sugar)

	r := chi.NewRouter()

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("portfolio."))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Infow("ping")
		RequestCompletedCount.Add(r.Context(), 1)
		_, err := w.Write([]byte("pong"))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	r.Mount("/articles", articleAPI.Routes())

	r.Get("/profile", siteAPI.Profile)
	r.Get("/experience", siteAPI.Experience)
	r.Get("/social", siteAPI.Social)
	r.Get("/newsletter", siteAPI.Newsletter)
	r.Get("/navigation", navAPI.Links)
	r.Get("/time", clockAPI.Time)

	// Passing -routes to the program will generate docs for the above
	// router definition.
	if *routes {
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/SergeyParamoshkin/portfolio",
			Intro:       "Portfolio content service generated docs.",
		}))

		return
	}

	FileServer(r, "/static", Static())

	go func() {
		err := http.ListenAndServe(a.config.Addr, r)
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	go func() {
		err := http.ListenAndServe(a.config.DiagAddr, diagRouter)
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// The deferred wallClock.Stop guarantees the ticker goroutine is gone
	// before the process exits.
	a.sugarLogger.Infow("shutting down")
}

func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit any URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", 301).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}

func (a *App) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, a.sugarLogger)))
	})
}

//go:embed static
var embededFiles embed.FS

func Static() http.FileSystem {
	log.Print("using embed mode")
	fsys, err := fs.Sub(embededFiles, "static")
	if err != nil {
		panic(err)
	}

	return http.FS(fsys)
}

// This is entirely optional, but demonstrates how to add custom logic to the
// render.Respond method.
// nolint
func init() {
	render.Respond = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		if err, ok := v.(error); ok {

			// We set a default error status response code if one hasn't been set.
			if _, ok := r.Context().Value(render.StatusCtxKey).(int); !ok {
				w.WriteHeader(400)
			}

			// We log the error
			// nolint
			fmt.Printf("Logging err: %s\n", err.Error())

			// We change the response to not reveal the actual error message,
			// instead we can transform the message something more friendly or mapped
			// to some code / language, etc.
			render.DefaultResponder(w, r, render.M{"status": "error"})

			return
		}

		render.DefaultResponder(w, r, v)
	}
}
