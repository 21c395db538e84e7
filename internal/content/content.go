package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

// Site bundles everything the pages render: owner bio, work history, social
// links, navigation, the newsletter block and the article metadata list.
// A Site is immutable after Load/Default; handlers only read it.
type Site struct {
	Person     model.Person       `yaml:"person"`
	Social     []model.SocialLink `yaml:"social"`
	Experience []model.Experience `yaml:"experience"`
	Navigation []model.NavLink    `yaml:"navigation"`
	Newsletter model.Newsletter   `yaml:"newsletter"`
	Articles   []model.Article    `yaml:"articles"`
}

// Load reads a site definition from a YAML file. The file replaces the
// compiled-in defaults wholesale, it is not merged, so there is exactly one
// source of truth for every field.
func Load(path string) (*Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	site := &Site{}
	if err := yaml.Unmarshal(raw, site); err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}

	return site, nil
}

// Default returns the compiled-in site content.
func Default() *Site {
	return &Site{
		Person: model.Person{
			FirstName: "Sergey",
			LastName:  "Paramoshkin",
			Role:      "Software Engineer",
			Location:  "Moscow, Russia",
			Bio: []string{
				"I build backend services and the tooling around them.",
				"Most of my recent work is Go: HTTP APIs, observability plumbing and small infrastructure utilities.",
			},
		},
		Social: []model.SocialLink{
			{Name: "GitHub", Icon: "github", URL: "https://github.com/SergeyParamoshkin"},
			{Name: "LinkedIn", Icon: "linkedin", URL: "https://www.linkedin.com/in/sergey-paramoshkin"},
			{Name: "Telegram", Icon: "telegram", URL: "https://t.me/SergeyParamoshkin"},
		},
		Experience: []model.Experience{
			{
				Company: "Acme Cloud",
				Role:    "Senior Software Engineer",
				Period:  "2021 — present",
				Achievements: []string{
					"Designed and ran a fleet of internal REST services",
					"Moved service metrics to OpenTelemetry with Prometheus export",
				},
				Logo: "/static/img/acme.svg",
			},
			{
				Company: "Pixel Systems",
				Role:    "Backend Developer",
				Period:  "2018 — 2021",
				Achievements: []string{
					"Built the content delivery API for the company site",
					"Introduced structured logging across services",
				},
			},
		},
		Navigation: []model.NavLink{
			{Label: "Home", Path: "/"},
			{Label: "Articles", Path: "/articles"},
			{Label: "Experience", Path: "/experience"},
			{Label: "Profile", Path: "/profile"},
		},
		Newsletter: model.Newsletter{
			Heading: "Get in touch",
			Body:    "Drop me a line or grab the resume.",
			Email:   "sergey@paramoshkin.dev",
			Resume:  "https://paramoshkin.dev/resume.pdf",
			Enabled: true,
		},
		Articles: []model.Article{
			{
				ID:          0,
				Title:       "Building Scalable React Applications",
				Description: "Patterns that keep a growing front end maintainable.",
				Date:        "2023-04-12",
				Cover:       "/static/img/articles/0.png",
				Tags:        []string{"react", "architecture"},
			},
			{
				ID:          1,
				Title:       "Structured Logging in Go Services",
				Description: "Why zap, and how to wire it through request context.",
				Date:        "2023-07-02",
				Cover:       "/static/img/articles/1.png",
				Tags:        []string{"go", "logging"},
			},
			{
				ID:          2,
				Title:       "Markdown Pipelines for Small Sites",
				Description: "Rendering article bodies from plain files with goldmark.",
				Date:        "2024-01-18",
				Cover:       "/static/img/articles/2.png",
				Tags:        []string{"go", "markdown"},
			},
		},
	}
}
