package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

// ErrNotFound is returned for ids the service has no metadata for.
var ErrNotFound = errors.New("not found")

type Client struct {
	http.Client
	Addr string
}

// Article mirrors the service's article payloads. List responses carry only
// the metadata fields; detail responses add the rendered body.
type Article struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Cover       string   `json:"cover"`
	Tags        []string `json:"tags"`
	BodyHTML    string   `json:"bodyHtml"`
	BodyStatus  string   `json:"bodyStatus"`
}

func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

type Profile struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Location string   `json:"location"`
	Bio      []string `json:"bio"`
}

type TimeInfo struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest("GET", c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

func (c *Client) get(path string, v interface{}) error {
	req, err := http.NewRequest("GET", c.Addr+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) Articles() ([]Article, error) {
	var articles []Article
	if err := c.get("/articles", &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

func (c *Client) Article(id int) (*Article, error) {
	article := &Article{}
	if err := c.get(fmt.Sprintf("/articles/%d", id), article); err != nil {
		return nil, err
	}

	return article, nil
}

func (c *Client) Profile() (*Profile, error) {
	profile := &Profile{}
	if err := c.get("/profile", profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (c *Client) Time() (*TimeInfo, error) {
	t := &TimeInfo{}
	if err := c.get("/time", t); err != nil {
		return nil, err
	}

	return t, nil
}
