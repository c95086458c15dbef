package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader reads whole files after checking their type and size.
type Reader struct {
	maxSize int64
	stat    func(string) (iofs.FileInfo, error)
	open    func(string) (io.ReadCloser, error)
}

// NewReader creates a Reader limited to domain.MaxFileSize.
func NewReader() *Reader {
	return &Reader{
		maxSize: domain.MaxFileSize,
		stat:    os.Stat,
		open: func(path string) (io.ReadCloser, error) {
			// #nosec G304 -- path is validated by the caller
			return os.Open(path)
		},
	}
}

// Locate resolves a directory argument to the manifest inside it.
// Paths that do not exist are returned unchanged so that Read reports them.
func (r *Reader) Locate(path, manifestName string) (string, error) {
	info, err := r.stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return path, nil
		}
		return "", zerr.With(domain.Tag(domain.ErrDirectory, "path", path), "cause", err.Error())
	}

	if info.IsDir() {
		return filepath.Join(path, manifestName), nil
	}
	return path, nil
}

// Read returns the content of path. The file must exist, be a regular file and be no
// larger than the limit; all three are checked before the file is opened.
func (r *Reader) Read(path string) ([]byte, error) {
	info, err := r.stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, domain.Tag(domain.ErrFileNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to inspect file"), "path", path)
	}

	if !info.Mode().IsRegular() {
		return nil, domain.Tag(domain.ErrNotAFile, "path", path)
	}

	if info.Size() > r.maxSize {
		return nil, zerr.With(domain.Tag(domain.ErrFileTooLarge, "size", info.Size()), "limit", r.maxSize)
	}

	f, err := r.open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	// The file may grow between stat and read.
	data, err := io.ReadAll(io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	if int64(len(data)) > r.maxSize {
		return nil, zerr.With(domain.Tag(domain.ErrFileTooLarge, "size", len(data)), "limit", r.maxSize)
	}

	return data, nil
}
