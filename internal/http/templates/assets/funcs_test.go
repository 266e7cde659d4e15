package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFunc(t *testing.T) {
	tests := []struct {
		opts Options
		name string
		want string
	}{
		{Options{}, "css/app.css", "/static/css/app.css"},
		{Options{}, "/js/htmx.min.js", "/static/js/htmx.min.js"},
		{Options{Version: "1.2.0"}, "css/app.css", "/static/css/app.css?v=1.2.0"},
		{Options{BasePath: "/assets"}, "css/app.css", "/assets/css/app.css"},
	}
	for _, tt := range tests {
		asset, ok := Funcs(tt.opts)["asset"].(func(string) string)
		require.True(t, ok)
		assert.Equal(t, tt.want, asset(tt.name))
	}
}
