package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockscan/internal/adapters/logger"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colours disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "scanning package-lock.json", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple warning", msg: "skipped 2 invalid list entries", goldenName: "warn_basic"},
		{name: "empty warning", msg: "", goldenName: "warn_empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Warn(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "stdlib error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: field foo not found in type config.Configfile"),
			goldenName: "error_multiline",
		},
		{
			name:       "tagged sentinel",
			err:        domain.Tag(domain.ErrFileNotFound, "path", "missing/package-lock.json"),
			goldenName: "error_tagged",
		},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(
					zerr.With(domain.Tag(domain.ErrFileTooLarge, "size", int64(60000000)), "limit", domain.MaxFileSize),
					"failed to read affected list",
				),
				"list", "extra.txt",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "stdlib chain",
			err: fmt.Errorf("failed to initialize scan: %w",
				fmt.Errorf("failed to open manifest: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "zerr over stdlib",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("disk unavailable"), "failed to load list"),
				"failed to process request",
			),
			goldenName: "error_chain_mixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("skipped entry")
	lg.Error(domain.Tag(domain.ErrPathTraversal, "path", "../secret"))

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"msg":"skipped entry"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"code":"PATH_TRAVERSAL"`)
	assert.NotContains(t, out, "✗")
}

func TestLogger_SetJSON_KeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.Wrap(domain.Tag(domain.ErrNotAFile, "path", "node_modules"), "failed to read manifest")

	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 2)
	assert.Equal(t, "failed to read manifest", entries[0].Message)
	assert.Empty(t, entries[0].Metadata)
	assert.Equal(t, domain.ErrNotAFile.Error(), entries[1].Message)
	assert.Equal(t, map[string]any{"path": "node_modules"}, entries[1].Metadata)
}

func TestFormatErrorEntries_NoCauses(t *testing.T) {
	got := logger.FormatErrorEntries(nil, "UNEXPECTED_ERROR")
	assert.Empty(t, got)
}
