// article_test.go
//go:build !integration
// +build !integration

package client

import "testing"

func TestArticleHasTag(t *testing.T) {
	a := Article{Tags: []string{"go", "markdown"}}
	if !a.HasTag("go") || a.HasTag("rust") {
		t.Fail()
	}
}
