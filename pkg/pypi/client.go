// Package pypi implements the read side of PEP 503 ("Simple Repository
// API"), just enough to check what files an index already has for a project.
//
// https://www.python.org/dev/peps/pep-0503/
package pypi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Client talks to a PEP 503 simple repository.  The zero value talks to
// PyPI.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

const PyPIBaseURL = "https://pypi.org/simple/"

func (c *Client) fillDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = PyPIBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.UserAgent == "" {
		c.UserAgent = "github.com/norok2/shipwheel/pkg/pypi"
	}
}

type HTTPError struct {
	Status     string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %s", e.Status)
}

// Normalize normalizes a project name per PEP 503: lowercase, with runs of
// `-`, `_`, and `.` replaced by a single `-`.
func Normalize(name string) string {
	return strings.ToLower(regexp.MustCompile("[-_.]+").ReplaceAllLiteralString(name, "-"))
}

// A FileLink is one anchor on a project's index page; Text is the filename
// as the index spells it.
type FileLink struct {
	Text string
	HRef string
}

// ListFiles fetches the index page for a project and returns the files it
// links to.
func (c Client) ListFiles(ctx context.Context, project string) ([]FileLink, error) {
	// "the only valid characters in a name are the ASCII alphabet, ASCII
	// numbers, `.`, `-`, and `_`."
	for _, char := range project {
		if !(('a' <= char && char <= 'z') ||
			('A' <= char && char <= 'Z') ||
			('0' <= char && char <= '9') ||
			char == '.' ||
			char == '-' ||
			char == '_') {
			return nil, fmt.Errorf("illegal character in project name: %q: %s",
				project, strconv.QuoteRuneToASCII(char))
		}
	}

	c.fillDefaults()
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	u.Path = path.Join(u.Path, Normalize(project)) + "/"
	return c.getIndex(ctx, u.String())
}

// HasFile reports whether the index already serves a file with the given
// name (exactly as spelled) for the project.
func (c Client) HasFile(ctx context.Context, project, filename string) (bool, error) {
	links, err := c.ListFiles(ctx, project)
	if err != nil {
		return false, err
	}
	for _, link := range links {
		if link.Text == filename {
			return true, nil
		}
	}
	return false, nil
}

func (c Client) get(ctx context.Context, requestURL string) (_ *url.URL, _ []byte, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("GET %q => %w", requestURL, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		_ = resp.Body.Close()
		return nil, nil, err
	}
	if err := resp.Body.Close(); err != nil {
		return nil, nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &HTTPError{Status: resp.Status, StatusCode: resp.StatusCode}
	}
	location := resp.Request.URL
	return location, content, nil
}

func (c Client) getIndex(ctx context.Context, requestURL string) ([]FileLink, error) {
	location, content, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var links []FileLink
	if err := visitHTML(doc, func(node *html.Node) error {
		if node.Type != html.ElementNode || node.Data != "a" {
			return nil
		}
		var link FileLink
		hasHRef := false
		for _, attr := range node.Attr {
			if attr.Namespace == "" && attr.Key == "href" {
				href, err := location.Parse(attr.Val)
				if err != nil {
					return err
				}
				link.HRef = href.String()
				hasHRef = true
			}
		}
		// file links always carry an href; skip navigational anchors
		if !hasHRef {
			return nil
		}
		var text strings.Builder
		_ = visitHTML(node, func(child *html.Node) error {
			if child.Type == html.TextNode {
				text.WriteString(child.Data)
			}
			return nil
		})
		link.Text = text.String()
		links = append(links, link)
		return nil
	}); err != nil {
		return nil, err
	}

	return links, nil
}

func visitHTML(node *html.Node, fn func(*html.Node) error) error {
	if err := fn(node); err != nil {
		return err
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := visitHTML(child, fn); err != nil {
			return err
		}
	}
	return nil
}
