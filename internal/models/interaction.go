// Package models defines the core data structures shared by the fetcher,
// the graph builder and the renderers.
package models

// InteractionRecord holds the named fields of a single BioGRID interaction.
type InteractionRecord map[string]any

// Interactions is a decoded BioGRID response: interaction records keyed by
// their identifier, with the identifiers kept in response order.
type Interactions struct {
	IDs     []string
	Records map[string]InteractionRecord
}

// NewInteractions returns an empty, ready to use Interactions.
func NewInteractions() *Interactions {
	return &Interactions{
		IDs:     []string{},
		Records: make(map[string]InteractionRecord),
	}
}

// Add stores rec under id. A repeated id replaces the record but keeps its
// original position.
func (i *Interactions) Add(id string, rec InteractionRecord) {
	if _, exists := i.Records[id]; !exists {
		i.IDs = append(i.IDs, id)
	}
	i.Records[id] = rec
}

// Len returns the number of records. A nil receiver has none.
func (i *Interactions) Len() int {
	if i == nil {
		return 0
	}
	return len(i.IDs)
}

// Head returns at most n identifiers from the front of the response.
func (i *Interactions) Head(n int) []string {
	if i == nil || n <= 0 {
		return nil
	}
	if n > len(i.IDs) {
		n = len(i.IDs)
	}
	return i.IDs[:n]
}

// Get returns the record stored under id.
func (i *Interactions) Get(id string) (InteractionRecord, bool) {
	if i == nil {
		return nil, false
	}
	rec, ok := i.Records[id]
	return rec, ok
}
