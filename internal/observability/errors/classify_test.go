package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	apperrors "github.com/internhub/marketplace-web/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"app error", apperrors.FromStatus(404, ""), "app_not_found"},
		{"wrapped app error", fmt.Errorf("load: %w", apperrors.FromTransport(context.DeadlineExceeded)), "app_timeout"},
		{"plain", goerrors.New("boom"), "errors_errorstring"},
		{"wrapped plain", fmt.Errorf("outer: %w", goerrors.New("inner")), "errors_errorstring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
