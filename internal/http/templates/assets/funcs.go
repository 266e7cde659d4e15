package assets

import (
	"html/template"
	"net/url"
	"path"
	"strings"
)

// Options configures asset-related template helpers.
type Options struct {
	// BasePath is the URL prefix static files are served under.
	BasePath string
	// Version is appended as ?v= for cache busting; dev mode leaves it empty.
	Version string
}

// Funcs returns template helpers for static asset URLs.
func Funcs(opts Options) template.FuncMap {
	base := opts.BasePath
	if base == "" {
		base = "/static/"
	}
	return template.FuncMap{
		"asset": func(name string) string {
			u := path.Join(base, strings.TrimPrefix(name, "/"))
			if opts.Version == "" {
				return u
			}
			return u + "?v=" + url.QueryEscape(opts.Version)
		},
	}
}
