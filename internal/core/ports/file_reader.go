package ports

// FileReader reads bounded input files from disk.
//
//go:generate mockgen -source=file_reader.go -destination=mocks/mock_file_reader.go -package=mocks
type FileReader interface {
	// Locate returns path itself, or path joined with manifestName when path is a directory.
	Locate(path, manifestName string) (string, error)

	// Read returns the whole content of a regular file no larger than domain.MaxFileSize.
	// Existence, type and size are checked before the file is opened.
	Read(path string) ([]byte, error)
}
