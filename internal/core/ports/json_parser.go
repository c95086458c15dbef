package ports

import "go.trai.ch/lockscan/internal/core/domain"

// JSONParser turns untrusted JSON text into a value tree.
//
//go:generate mockgen -source=json_parser.go -destination=mocks/mock_json_parser.go -package=mocks
type JSONParser interface {
	// Parse decodes data, dropping object keys that could alter shared object state.
	Parse(data []byte) (domain.Value, error)
}
