//go:build tools

// Package tools documents development tool dependencies.
// These are installed with `go install` and are not tracked in go.mod.
package tools

// Air - live reload for `cmd/internhub` during template and handler work.
//   Install: go install github.com/air-verse/air@v1.63.0
//   Run with DEV=true so templates and static files are read from disk.
//   Docs: https://github.com/air-verse/air
//
// mockgen - regenerates internal/mocks (see internal/mocks/generate.go).
//   Run: go generate ./internal/mocks
