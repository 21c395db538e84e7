// client_integration_test.go
//go:build integration
// +build integration

package client

import (
	"errors"
	"net/http"
	"testing"
)

var c = Client{
	Addr:   "http://localhost:3333",
	Client: http.Client{},
}

func TestPing(t *testing.T) {
	if s, err := c.Ping(); err != nil || s != "pong" {
		t.Fail()
	}
}

func TestArticles(t *testing.T) {
	articles, err := c.Articles()
	if err != nil || len(articles) == 0 {
		t.Fail()
	}
}

func TestArticleNotFound(t *testing.T) {
	if _, err := c.Article(999); !errors.Is(err, ErrNotFound) {
		t.Fail()
	}
}
