package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DocumentType identifies one of the wire documents.
type DocumentType int

const (
	DocumentHealth DocumentType = iota
	DocumentInfo
	DocumentNotFound
)

func (t DocumentType) String() string {
	switch t {
	case DocumentHealth:
		return "health"
	case DocumentInfo:
		return "info"
	case DocumentNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("DocumentType(%d)", int(t))
	}
}

var ErrSchemaNotFound = errors.New("schema not found")

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Document DocumentType
	Errors   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s document: %s", e.Document, strings.Join(e.Errors, "; "))
}

type Schema struct {
	schemas map[DocumentType]*gojsonschema.Schema
}

func (s *Schema) Get(documentType DocumentType) (*gojsonschema.Schema, error) {
	schema, ok := s.schemas[documentType]
	if !ok {
		return nil, ErrSchemaNotFound
	}

	return schema, nil
}

// Validate validates the encoded document against its schema.
func (s *Schema) Validate(documentType DocumentType, body []byte) error {
	schema, err := s.Get(documentType)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Document: documentType}
	for _, resultErr := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, resultErr.String())
	}

	return validationErr
}

//go:embed health.json
var healthDocument []byte

//go:embed info.json
var infoDocument []byte

//go:embed not-found.json
var notFoundDocument []byte

var documentLoaders = map[DocumentType]gojsonschema.JSONLoader{
	DocumentHealth:   gojsonschema.NewBytesLoader(healthDocument),
	DocumentInfo:     gojsonschema.NewBytesLoader(infoDocument),
	DocumentNotFound: gojsonschema.NewBytesLoader(notFoundDocument),
}

// NewDocumentSchema compiles the schemas of all wire documents.
func NewDocumentSchema() (*Schema, error) {
	schemas := make(map[DocumentType]*gojsonschema.Schema, len(documentLoaders))

	for documentType, loader := range documentLoaders {
		schema, err := gojsonschema.NewSchema(loader)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", documentType, err)
		}

		schemas[documentType] = schema
	}

	return &Schema{schemas: schemas}, nil
}
