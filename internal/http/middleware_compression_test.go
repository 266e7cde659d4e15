package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acceptEncodingGzip = "gzip"

type compressionTestConfig struct {
	Handler        http.Handler
	Level          int
	MinSize        int
	Method         string
	AcceptEncoding string
}

func runCompressionTest(t *testing.T, cfg compressionTestConfig) *http.Response {
	t.Helper()
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, "/", nil)
	if cfg.AcceptEncoding != "" {
		req.Header.Set("Accept-Encoding", cfg.AcceptEncoding)
	}
	rec := httptest.NewRecorder()
	Compression(CompressionConfig{Level: cfg.Level, MinSize: cfg.MinSize})(cfg.Handler).ServeHTTP(rec, req)
	return rec.Result()
}

func verifyGzipResponse(t *testing.T, resp *http.Response, want string) {
	t.Helper()
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	assert.Contains(t, resp.Header.Values("Vary"), "Accept-Encoding")
	gz, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	defer gz.Close()
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, want, string(body))
}

func verifyUncompressedResponse(t *testing.T, resp *http.Response, want string) {
	t.Helper()
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, want, string(body))
}

func htmlHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestCompression(t *testing.T) {
	content := strings.Repeat("<li>Backend intern</li>", 200)

	tests := []struct {
		name           string
		acceptEncoding string
		level          int
		expectGzip     bool
	}{
		{"client accepts gzip", "gzip, deflate", 6, true},
		{"client does not accept gzip", "deflate", 6, false},
		{"no accept-encoding header", "", 6, false},
		{"fastest level", acceptEncodingGzip, 1, true},
		{"best level", acceptEncodingGzip, 9, true},
		{"out of range level falls back", acceptEncodingGzip, 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := runCompressionTest(t, compressionTestConfig{
				Handler:        htmlHandler(http.StatusOK, content),
				Level:          tt.level,
				AcceptEncoding: tt.acceptEncoding,
			})
			defer resp.Body.Close()

			if tt.expectGzip {
				verifyGzipResponse(t, resp, content)
			} else {
				verifyUncompressedResponse(t, resp, content)
			}
		})
	}
}

func TestCompressionMinSize(t *testing.T) {
	t.Run("short body is written uncompressed", func(t *testing.T) {
		resp := runCompressionTest(t, compressionTestConfig{
			Handler:        htmlHandler(http.StatusOK, "<p>ok</p>"),
			MinSize:        1024,
			AcceptEncoding: acceptEncodingGzip,
		})
		defer resp.Body.Close()
		verifyUncompressedResponse(t, resp, "<p>ok</p>")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("several small writes crossing the threshold are compressed", func(t *testing.T) {
		chunk := strings.Repeat("a", 300)
		h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			for range 4 {
				_, _ = w.Write([]byte(chunk))
			}
		})
		resp := runCompressionTest(t, compressionTestConfig{
			Handler:        h,
			MinSize:        1024,
			AcceptEncoding: acceptEncodingGzip,
		})
		defer resp.Body.Close()
		verifyGzipResponse(t, resp, strings.Repeat(chunk, 4))
	})
}

func TestCompressionWithStatusCodes(t *testing.T) {
	body := strings.Repeat("x", 2048)
	tests := []struct {
		name       string
		status     int
		body       string
		expectGzip bool
	}{
		{"200 compressed", http.StatusOK, body, true},
		{"404 compressed", http.StatusNotFound, body, true},
		{"500 compressed", http.StatusInternalServerError, body, true},
		{"204 untouched", http.StatusNoContent, "", false},
		{"304 untouched", http.StatusNotModified, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := runCompressionTest(t, compressionTestConfig{
				Handler:        htmlHandler(tt.status, tt.body),
				AcceptEncoding: acceptEncodingGzip,
			})
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.expectGzip {
				verifyGzipResponse(t, resp, tt.body)
			} else {
				assert.Empty(t, resp.Header.Get("Content-Encoding"))
			}
		})
	}
}

func TestCompressionContentTypeFiltering(t *testing.T) {
	body := strings.Repeat("y", 2048)
	tests := []struct {
		contentType string
		expectGzip  bool
	}{
		{"text/html; charset=utf-8", true},
		{"text/css", true},
		{"application/json", true},
		{"application/javascript", true},
		{"image/svg+xml", true},
		{"image/png", false},
		{"application/octet-stream", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				_, _ = w.Write([]byte(body))
			})
			resp := runCompressionTest(t, compressionTestConfig{Handler: h, AcceptEncoding: acceptEncodingGzip})
			defer resp.Body.Close()

			if tt.expectGzip {
				verifyGzipResponse(t, resp, body)
			} else {
				verifyUncompressedResponse(t, resp, body)
			}
		})
	}
}

func TestCompressionHEADRequest(t *testing.T) {
	resp := runCompressionTest(t, compressionTestConfig{
		Handler:        htmlHandler(http.StatusOK, ""),
		Method:         http.MethodHead,
		AcceptEncoding: acceptEncodingGzip,
	})
	defer resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"gzip;q=1", true},
		{"gzip;q=0.5", true},
		{"gzip;q=0", false},
		{"gzip, deflate", true},
		{"deflate, gzip", true},
		{"GZIP", true},
		{"*", true},
		{"deflate", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, acceptsGzip(tt.header), tt.header)
	}
}

func TestCompressionPreExistingContentEncoding(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "br")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("already encoded"))
	})
	resp := runCompressionTest(t, compressionTestConfig{Handler: h, AcceptEncoding: acceptEncodingGzip})
	defer resp.Body.Close()

	assert.Equal(t, "br", resp.Header.Get("Content-Encoding"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "already encoded", string(body))
}
