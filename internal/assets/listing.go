package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// DefaultExtension is the model file type the viewer loads.
const DefaultExtension = ".glb"

// IsRemote reports whether source is an http(s) URL rather than a local directory.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// List returns the names of the assets under source whose extension matches ext
// (case-insensitive). Local directories are listed in name order; remote directory
// indexes keep the order of their links.
func List(ctx context.Context, client *http.Client, source, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	if IsRemote(source) {
		return listRemote(ctx, client, source, ext)
	}
	return listLocal(source, ext)
}

func listLocal(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: list %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func listRemote(ctx context.Context, client *http.Client, source, ext string) ([]string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: list: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: list %s: HTTP %d", source, resp.StatusCode)
	}
	return parseIndex(resp.Body, ext)
}

// parseIndex extracts the base names of every <a href> in an HTML directory index that ends in ext.
// Duplicate names are reported once.
func parseIndex(r io.Reader, ext string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("assets: parse index: %w", err)
	}
	var names []string
	seen := make(map[string]bool)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				name := hrefName(attr.Val)
				if name != "" && hasExt(name, ext) && !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return names, nil
}

// hrefName returns the unescaped last path segment of href, ignoring query and fragment.
func hrefName(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

func hasExt(name, ext string) bool {
	return strings.EqualFold(path.Ext(name), ext)
}

// Resolve joins a listed name onto source: a URL for remote sources, a file path otherwise.
func Resolve(source, name string) (string, error) {
	if !IsRemote(source) {
		return filepath.Join(source, name), nil
	}
	base, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(&url.URL{Path: name}).String(), nil
}
