package httpx

import (
	"os"
	"strings"
	"testing"
)

// RequireTemplateRenderer parses the on-disk templates or skips the test.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: os.DirFS(TemplatePathFromTest)})
	if err != nil {
		t.Skipf("templates under %s unavailable: %v", TemplatePathFromTest, err)
	}
	return tr
}

// RequireTemplateRendererFromRoot parses frontend/templates relative to the
// module root, for binaries and tests launched from there.
func RequireTemplateRendererFromRoot(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: os.DirFS(TemplatePathFromRoot)})
	if err != nil {
		t.Skipf("templates under %s unavailable: %v", TemplatePathFromRoot, err)
	}
	return tr
}

// ContainsAll reports whether every fragment appears in s.
func ContainsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}

// CreateUIHandlersForTest returns page handlers backed by the real templates.
func CreateUIHandlersForTest(t *testing.T) *UIHandlers {
	t.Helper()
	return &UIHandlers{T: RequireTemplateRenderer(t)}
}
