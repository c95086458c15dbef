package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockscan/internal/adapters/safejson"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/engine/scan"
)

func parse(t *testing.T, input string) domain.Value {
	t.Helper()
	v, err := safejson.NewParser().Parse([]byte(input))
	require.NoError(t, err)
	return v
}

func TestExtractor_Extract_RoundTrip(t *testing.T) {
	manifest := parse(t, `{"packages": {
		"": {},
		"node_modules/foo": {"version": "1.2.3"},
		"node_modules/@s/bar": {"version": "0.0.1"},
		"node_modules/foo/node_modules/nested": {"version": "9.9.9"}
	}}`)

	got, err := scan.NewExtractor().Extract(manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"@s/bar@0.0.1", "foo@1.2.3"}, got)
}

func TestExtractor_Extract_OrderIndependent(t *testing.T) {
	a := parse(t, `{"packages": {
		"node_modules/zeta": {"version": "1.0.0"},
		"node_modules/alpha": {"version": "2.0.0"},
		"node_modules/@scope/mid": {"version": "3.0.0"}
	}}`)
	b := parse(t, `{"packages": {
		"node_modules/@scope/mid": {"version": "3.0.0"},
		"node_modules/alpha": {"version": "2.0.0"},
		"node_modules/zeta": {"version": "1.0.0"}
	}}`)

	extractor := scan.NewExtractor()
	first, err := extractor.Extract(a)
	require.NoError(t, err)
	second, err := extractor.Extract(b)
	require.NoError(t, err)
	again, err := extractor.Extract(a)
	require.NoError(t, err)

	assert.Equal(t, []string{"@scope/mid@3.0.0", "alpha@2.0.0", "zeta@1.0.0"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, again)
}

func TestExtractor_Extract_SkipsOutOfScopeEntries(t *testing.T) {
	manifest := parse(t, `{"packages": {
		"": {"name": "root", "version": "1.0.0"},
		"node_modules/no-version": {"resolved": "x"},
		"node_modules/empty-version": {"version": ""},
		"node_modules/numeric-version": {"version": 1},
		"node_modules/link": true,
		"node_modules/unscoped/deep": {"version": "1.0.0"},
		"node_modules/@": {"version": "1.0.0"},
		"node_modules/@/x": {"version": "1.0.0"},
		"node_modules/": {"version": "1.0.0"},
		"packages/workspace": {"version": "1.0.0"},
		"node_modules/@scope/a/node_modules/b": {"version": "1.0.0"},
		"node_modules/kept": {"version": "4.0.0"}
	}}`)

	got, err := scan.NewExtractor().Extract(manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept@4.0.0"}, got)
}

func TestExtractor_Extract_Dedupes(t *testing.T) {
	manifest := parse(t, `{"packages": {
		"node_modules/a": {"version": "1.0.0"},
		"node_modules/a": {"version": "1.0.1"},
		"node_modules/b": {"version": "1.0.0"}
	}}`)

	got, err := scan.NewExtractor().Extract(manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@1.0.1", "b@1.0.0"}, got)
}

func TestExtractor_Extract_InvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array root", input: `[]`},
		{name: "missing packages", input: `{"lockfileVersion": 1, "dependencies": {}}`},
		{name: "packages is array", input: `{"packages": []}`},
		{name: "packages is null", input: `{"packages": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scan.NewExtractor().Extract(parse(t, tt.input))
			require.Error(t, err)
			assert.Equal(t, domain.KindInvalidJSONInput, domain.KindOf(err))
		})
	}
}

func TestExtractor_Extract_EmptyPackages(t *testing.T) {
	got, err := scan.NewExtractor().Extract(parse(t, `{"packages": {"": {}}}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractor_Extract_RequiresStringVersion(t *testing.T) {
	manifest := parse(t, `{"packages": {
		"node_modules/number": {"version": 1},
		"node_modules/float": {"version": 1.5},
		"node_modules/flag": {"version": true},
		"node_modules/nested": {"version": {"major": 1}},
		"node_modules/null": {"version": null},
		"node_modules/@x": {"version": "1.0.0"},
		"node_modules/text": {"version": "1.0.0"}
	}}`)

	got, err := scan.NewExtractor().Extract(manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"text@1.0.0"}, got)
}
