package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockscan/internal/adapters/fs"
	"go.trai.ch/lockscan/internal/adapters/safejson"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/core/ports/mocks"
	"go.trai.ch/lockscan/internal/engine/scan"
	"go.uber.org/mock/gomock"
)

const leftPadManifest = `{
  "name": "app",
  "lockfileVersion": 3,
  "packages": {
    "": {"name": "app"},
    "node_modules/left-pad": {"version": "1.0.0"},
    "node_modules/right-pad": {"version": "2.0.0"}
  }
}`

func TestScanner_Scan_LeftPad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package-lock.json"), []byte(leftPadManifest), 0o600))

	scanner := scan.NewScanner(fs.NewGuardAt(dir), fs.NewReader(), safejson.NewParser())
	affected := domain.NewAffectedSet([]string{"left-pad@1.0.0"})

	report, err := scanner.Scan(t.Context(), dir, domain.DefaultLockfileName, affected)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "package-lock.json"), report.Manifest)
	assert.Equal(t, []string{"left-pad@1.0.0", "right-pad@2.0.0"}, report.AllPackages)
	assert.Equal(t, []string{"left-pad@1.0.0"}, report.AffectedPackages)
}

func TestScanner_Scan_Clean(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(manifest, []byte(leftPadManifest), 0o600))

	scanner := scan.NewScanner(fs.NewGuardAt(dir), fs.NewReader(), safejson.NewParser())

	report, err := scanner.Scan(t.Context(), manifest, domain.DefaultLockfileName, domain.NewAffectedSet(nil))
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Len(t, report.AllPackages, 2)
}

func TestScanner_Packages_PropagatesKinds(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(guard *mocks.MockPathGuard, reader *mocks.MockFileReader, parser *mocks.MockJSONParser)
		wantKind domain.Kind
	}{
		{
			name: "guard rejects",
			setup: func(guard *mocks.MockPathGuard, _ *mocks.MockFileReader, _ *mocks.MockJSONParser) {
				guard.EXPECT().Validate("../x").Return("", domain.ErrPathTraversal)
			},
			wantKind: domain.KindPathTraversal,
		},
		{
			name: "directory inspection fails",
			setup: func(guard *mocks.MockPathGuard, reader *mocks.MockFileReader, _ *mocks.MockJSONParser) {
				guard.EXPECT().Validate("../x").Return("/w/x", nil)
				reader.EXPECT().Locate("/w/x", "package-lock.json").Return("", domain.ErrDirectory)
			},
			wantKind: domain.KindDirectoryError,
		},
		{
			name: "manifest name escapes",
			setup: func(guard *mocks.MockPathGuard, reader *mocks.MockFileReader, _ *mocks.MockJSONParser) {
				guard.EXPECT().Validate("../x").Return("/w", nil)
				reader.EXPECT().Locate("/w", "package-lock.json").Return("/w/../etc/passwd", nil)
				guard.EXPECT().Validate("/w/../etc/passwd").Return("", domain.ErrAbsolutePathOutsideCwd)
			},
			wantKind: domain.KindAbsolutePathOutside,
		},
		{
			name: "file too large",
			setup: func(guard *mocks.MockPathGuard, reader *mocks.MockFileReader, _ *mocks.MockJSONParser) {
				guard.EXPECT().Validate("../x").Return("/w/lock.json", nil)
				reader.EXPECT().Locate("/w/lock.json", "package-lock.json").Return("/w/lock.json", nil)
				reader.EXPECT().Read("/w/lock.json").Return(nil, domain.Tag(domain.ErrFileTooLarge, "size", 1))
			},
			wantKind: domain.KindFileTooLarge,
		},
		{
			name: "parse failure",
			setup: func(guard *mocks.MockPathGuard, reader *mocks.MockFileReader, parser *mocks.MockJSONParser) {
				guard.EXPECT().Validate("../x").Return("/w/lock.json", nil)
				reader.EXPECT().Locate("/w/lock.json", "package-lock.json").Return("/w/lock.json", nil)
				reader.EXPECT().Read("/w/lock.json").Return([]byte("{"), nil)
				parser.EXPECT().Parse([]byte("{")).Return(domain.Null(), domain.ErrJSONParse)
			},
			wantKind: domain.KindJSONParseError,
		},
		{
			name: "wrong shape",
			setup: func(guard *mocks.MockPathGuard, reader *mocks.MockFileReader, parser *mocks.MockJSONParser) {
				guard.EXPECT().Validate("../x").Return("/w/lock.json", nil)
				reader.EXPECT().Locate("/w/lock.json", "package-lock.json").Return("/w/lock.json", nil)
				reader.EXPECT().Read("/w/lock.json").Return([]byte("[]"), nil)
				parser.EXPECT().Parse([]byte("[]")).Return(domain.Array(nil), nil)
			},
			wantKind: domain.KindInvalidJSONInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			guard := mocks.NewMockPathGuard(ctrl)
			reader := mocks.NewMockFileReader(ctrl)
			parser := mocks.NewMockJSONParser(ctrl)
			tt.setup(guard, reader, parser)

			_, _, err := scan.NewScanner(guard, reader, parser).Packages(t.Context(), "../x", domain.DefaultLockfileName)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}

func TestScanner_Packages_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mocks.NewMockPathGuard(ctrl)
	reader := mocks.NewMockFileReader(ctrl)
	parser := mocks.NewMockJSONParser(ctrl)

	guard.EXPECT().Validate("lock.json").Return("/w/lock.json", nil)
	reader.EXPECT().Locate("/w/lock.json", "package-lock.json").Return("/w/lock.json", nil)
	reader.EXPECT().Read("/w/lock.json").Return([]byte("{}"), nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, _, err := scan.NewScanner(guard, reader, parser).Packages(ctx, "lock.json", domain.DefaultLockfileName)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_Packages_ManifestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		wantKind domain.Kind
	}{
		{name: "empty", content: "", wantErr: domain.ErrInvalidJSONInput, wantKind: domain.KindInvalidJSONInput},
		{name: "blank", content: "   \n", wantErr: domain.ErrInvalidJSONInput, wantKind: domain.KindInvalidJSONInput},
		{name: "truncated", content: `{"packages": {`, wantErr: domain.ErrJSONParse, wantKind: domain.KindJSONParseError},
		{name: "array root", content: `[]`, wantErr: domain.ErrInvalidJSONInput, wantKind: domain.KindInvalidJSONInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			manifest := filepath.Join(dir, "package-lock.json")
			require.NoError(t, os.WriteFile(manifest, []byte(tt.content), 0o600))

			scanner := scan.NewScanner(fs.NewGuardAt(dir), fs.NewReader(), safejson.NewParser())

			_, _, err := scanner.Packages(t.Context(), manifest, domain.DefaultLockfileName)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}
