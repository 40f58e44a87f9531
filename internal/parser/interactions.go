// Package parser turns BioGRID responses into interaction records and
// interaction records into a colored, directed gene graph.
package parser

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/genescope/core/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseInteractions decodes a BioGRID JSON response. An empty body, an empty
// object, an empty array and null all decode to an empty result. Any other
// non-object document is rejected.
func ParseInteractions(data []byte) (*models.Interactions, error) {
	interactions := models.NewInteractions()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return interactions, nil
	}

	switch json.Get(trimmed).ValueType() {
	case jsoniter.NilValue:
		return interactions, nil
	case jsoniter.ArrayValue:
		var list []any
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
		}
		if len(list) != 0 {
			return nil, fmt.Errorf("invalid interactions: expected an object, got an array of %d items", len(list))
		}
		return interactions, nil
	}

	var records map[string]models.InteractionRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}

	ids, err := objectKeys(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction ids: %w", err)
	}

	for _, id := range ids {
		interactions.Add(id, records[id])
	}

	return interactions, nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(data []byte) ([]string, error) {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	keys := []string{}
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		keys = append(keys, key)
		it.Skip()
		return true
	})

	if iter.Error != nil {
		return nil, iter.Error
	}

	return keys, nil
}
