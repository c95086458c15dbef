// Package safejson parses untrusted JSON into domain values while dropping keys
// that could be used to tamper with shared object state.
package safejson

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 512

// forbiddenKeys are dropped together with their values at every depth.
var forbiddenKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// Parser decodes JSON documents into domain.Value trees.
type Parser struct {
	maxDepth int
}

// NewParser creates a Parser with DefaultMaxDepth.
func NewParser() *Parser {
	return &Parser{maxDepth: DefaultMaxDepth}
}

// NewParserWithDepth creates a Parser with a custom nesting limit.
func NewParserWithDepth(maxDepth int) *Parser {
	return &Parser{maxDepth: maxDepth}
}

// Parse decodes exactly one JSON value from data.
// Empty input fails with ErrInvalidJSONInput, malformed input or trailing data with ErrJSONParse.
func (p *Parser) Parse(data []byte) (domain.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Null(), domain.Tag(domain.ErrInvalidJSONInput, "size", len(data))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return domain.Null(), parseError(dec, err)
	}

	value, err := p.parseValue(dec, tok, 0)
	if err != nil {
		return domain.Null(), err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return domain.Null(), parseError(dec, err)
	}

	return value, nil
}

func (p *Parser) parseValue(dec *json.Decoder, tok json.Token, depth int) (domain.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		if depth >= p.maxDepth {
			return domain.Null(), zerr.With(domain.Tag(domain.ErrJSONParse, "offset", dec.InputOffset()), "max_depth", p.maxDepth)
		}
		if t == '[' {
			return p.parseArray(dec, depth+1)
		}
		return p.parseObject(dec, depth+1)
	case string:
		return domain.String(t), nil
	case json.Number:
		return domain.Number(t.String()), nil
	case bool:
		return domain.Bool(t), nil
	case nil:
		return domain.Null(), nil
	default:
		return domain.Null(), parseError(dec, errors.New("unexpected token"))
	}
}

func (p *Parser) parseArray(dec *json.Decoder, depth int) (domain.Value, error) {
	items := []domain.Value{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return domain.Null(), parseError(dec, err)
		}
		if tok == json.Delim(']') {
			return domain.Array(items), nil
		}

		item, err := p.parseValue(dec, tok, depth)
		if err != nil {
			return domain.Null(), err
		}
		items = append(items, item)
	}
}

func (p *Parser) parseObject(dec *json.Decoder, depth int) (domain.Value, error) {
	obj := domain.NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return domain.Null(), parseError(dec, err)
		}
		if tok == json.Delim('}') {
			return domain.ObjectOf(obj), nil
		}

		key, ok := tok.(string)
		if !ok {
			return domain.Null(), parseError(dec, errors.New("object key is not a string"))
		}

		tok, err = dec.Token()
		if err != nil {
			return domain.Null(), parseError(dec, err)
		}

		// The value is still parsed so the rest of the document stays well-formed.
		value, err := p.parseValue(dec, tok, depth)
		if err != nil {
			return domain.Null(), err
		}

		if _, forbidden := forbiddenKeys[key]; forbidden {
			continue
		}
		obj.Set(key, value)
	}
}

func parseError(dec *json.Decoder, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return zerr.With(domain.Tag(domain.ErrJSONParse, "offset", dec.InputOffset()), "cause", err.Error())
}
