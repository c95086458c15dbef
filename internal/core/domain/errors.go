package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Kind is the stable, machine-readable code carried by every lockscan error.
type Kind string

// Error kinds. The string values are part of the CLI contract and must not change.
const (
	KindInvalidPath          Kind = "INVALID_PATH"
	KindNullBytesInPath      Kind = "NULL_BYTES_IN_PATH"
	KindPathTraversal        Kind = "PATH_TRAVERSAL"
	KindAbsolutePathOutside  Kind = "ABSOLUTE_PATH_OUTSIDE_CWD"
	KindFileNotFound         Kind = "FILE_NOT_FOUND"
	KindNotAFile             Kind = "NOT_A_FILE"
	KindFileTooLarge         Kind = "FILE_TOO_LARGE"
	KindInvalidJSONInput     Kind = "INVALID_JSON_INPUT"
	KindJSONParseError       Kind = "JSON_PARSE_ERROR"
	KindInvalidPackageString Kind = "INVALID_PACKAGE_STRING"
	KindPackageStringTooLong Kind = "PACKAGE_STRING_TOO_LONG"
	KindInvalidPackageFormat Kind = "INVALID_PACKAGE_FORMAT"
	KindInvalidPackageName   Kind = "INVALID_PACKAGE_NAME"
	KindInvalidVersion       Kind = "INVALID_VERSION"
	KindNoArguments          Kind = "NO_ARGUMENTS"
	KindInvalidPathArgument  Kind = "INVALID_PATH_ARGUMENT"
	KindDirectoryError       Kind = "DIRECTORY_ERROR"
	KindUnexpectedError      Kind = "UNEXPECTED_ERROR"
)

var (
	// ErrInvalidPath is returned when a path is empty.
	ErrInvalidPath = zerr.New("path must be a non-empty string")

	// ErrNullBytesInPath is returned when a path contains a NUL byte.
	ErrNullBytesInPath = zerr.New("null bytes not allowed in path")

	// ErrPathTraversal is returned when a path escapes the working directory through
	// parent segments or refers to a home directory.
	ErrPathTraversal = zerr.New("path traversal detected")

	// ErrAbsolutePathOutsideCwd is returned when an absolute path does not lie under the
	// working directory.
	ErrAbsolutePathOutsideCwd = zerr.New("absolute paths outside working directory not allowed")

	// ErrFileNotFound is returned when the manifest or a list file does not exist.
	ErrFileNotFound = zerr.New("file not found")

	// ErrNotAFile is returned when a path exists but is not a regular file.
	ErrNotAFile = zerr.New("path is not a file")

	// ErrFileTooLarge is returned when a file exceeds MaxFileSize.
	ErrFileTooLarge = zerr.New("file too large")

	// ErrInvalidJSONInput is returned when the JSON input is empty or has the wrong shape.
	ErrInvalidJSONInput = zerr.New("invalid JSON input")

	// ErrJSONParse is returned when the JSON input is malformed.
	ErrJSONParse = zerr.New("invalid JSON")

	// ErrInvalidPackageString is returned when a package string is empty.
	ErrInvalidPackageString = zerr.New("package string must be a non-empty string")

	// ErrPackageStringTooLong is returned when a package string exceeds MaxPackageStringLength.
	ErrPackageStringTooLong = zerr.New("package string too long")

	// ErrInvalidPackageFormat is returned when a package string has no name@version separator.
	ErrInvalidPackageFormat = zerr.New("invalid package format, expected format: name@version")

	// ErrInvalidPackageName is returned when a package name fails npm naming rules.
	ErrInvalidPackageName = zerr.New("invalid package name format")

	// ErrInvalidVersion is returned when a version is not major.minor.patch.
	ErrInvalidVersion = zerr.New("invalid version format")

	// ErrNoArguments is returned when no manifest path was given.
	ErrNoArguments = zerr.New("no arguments provided")

	// ErrInvalidPathArgument is returned when the manifest path argument is empty.
	ErrInvalidPathArgument = zerr.New("invalid path provided")

	// ErrDirectory is returned when a directory argument cannot be inspected.
	ErrDirectory = zerr.New("error processing directory")

	// ErrUnexpected is returned for failures outside the taxonomy.
	ErrUnexpected = zerr.New("unexpected error")

	// ErrAffectedPackagesFound is returned when the scan matched at least one affected package.
	// It only signals the exit status and is never printed.
	ErrAffectedPackagesFound = zerr.New("affected packages found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidLockfileName is returned when the configured lockfile name contains directories.
	ErrInvalidLockfileName = zerr.New("lockfile must be a file name without directories")

	// ErrInvalidFormat is returned when an unknown output format is requested.
	ErrInvalidFormat = zerr.New("invalid output format, expected 'auto', 'text' or 'json'")
)

// kinds maps sentinels to their codes. Config and format errors are setup failures and
// report as UNEXPECTED_ERROR.
var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidPath, KindInvalidPath},
	{ErrNullBytesInPath, KindNullBytesInPath},
	{ErrPathTraversal, KindPathTraversal},
	{ErrAbsolutePathOutsideCwd, KindAbsolutePathOutside},
	{ErrFileNotFound, KindFileNotFound},
	{ErrNotAFile, KindNotAFile},
	{ErrFileTooLarge, KindFileTooLarge},
	{ErrInvalidJSONInput, KindInvalidJSONInput},
	{ErrJSONParse, KindJSONParseError},
	{ErrInvalidPackageString, KindInvalidPackageString},
	{ErrPackageStringTooLong, KindPackageStringTooLong},
	{ErrInvalidPackageFormat, KindInvalidPackageFormat},
	{ErrInvalidPackageName, KindInvalidPackageName},
	{ErrInvalidVersion, KindInvalidVersion},
	{ErrNoArguments, KindNoArguments},
	{ErrInvalidPathArgument, KindInvalidPathArgument},
	{ErrDirectory, KindDirectoryError},
	{ErrUnexpected, KindUnexpectedError},
}

// KindOf returns the code of the outermost taxonomy error in err's chain.
// Errors outside the taxonomy report KindUnexpectedError.
func KindOf(err error) Kind {
	for current := err; current != nil; current = errors.Unwrap(current) {
		for _, k := range kinds {
			if current == k.err {
				return k.kind
			}
		}
	}
	return KindUnexpectedError
}

// Tag attaches a key-value pair to err while keeping err itself reachable for errors.Is
// and KindOf. zerr.With on a bare *zerr.Error copies it, so err is wrapped first.
func Tag(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
