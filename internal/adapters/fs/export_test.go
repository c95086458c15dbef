package fs

import (
	"io"
	iofs "io/fs"
)

// NewReaderWith exposes a Reader with injected filesystem calls for white-box tests.
func NewReaderWith(
	maxSize int64,
	stat func(string) (iofs.FileInfo, error),
	open func(string) (io.ReadCloser, error),
) *Reader {
	return &Reader{maxSize: maxSize, stat: stat, open: open}
}
