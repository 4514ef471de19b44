package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/xeipuuv/gojsonschema"
)

// Every endpoint answers with an array of objects carrying an integer id.
const listSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer", "minimum": 0}
		}
	}
}`

var compiledListSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(listSchema))
})

// decodeList validates body against the list schema and decodes it.
func decodeList[T any](body []byte) ([]T, error) {
	schema, err := compiledListSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: compiling response schema: %w", igdb.ErrDecode, err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", igdb.ErrDecode, err)
	}

	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}

		return nil, fmt.Errorf("%w: response does not match schema: %s", igdb.ErrDecode, strings.Join(errs, "; "))
	}

	items := make([]T, 0)

	err = json.Unmarshal(body, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", igdb.ErrDecode, err)
	}

	return items, nil
}
