package content

import (
	"encoding/json"
	"log/slog"
	"sort"
)

// Document is a list document that can be filtered and ordered
type Document interface {
	Validate() error
	Active() bool
	SortOrder() float64
	DocumentID() string
}

// Select drops inactive and invalid documents and orders the rest ascending by
// order. The sort is stable, so documents with equal order keep their store order.
func Select[D Document](collection string, docs []D) []D {
	kept := make([]D, 0, len(docs))
	for _, d := range docs {
		if !d.Active() {
			documentsDropped.WithLabelValues(collection, "inactive").Inc()
			slog.Warn("dropping inactive document", "collection", collection, "id", d.DocumentID())
			continue
		}
		if err := d.Validate(); err != nil {
			documentsDropped.WithLabelValues(collection, "invalid").Inc()
			slog.Error("dropping invalid document", "collection", collection, "id", d.DocumentID(), "error", err)
			continue
		}
		kept = append(kept, d)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].SortOrder() < kept[j].SortOrder()
	})
	return kept
}

func decodeList[D Document](collection string) func(json.RawMessage) ([]D, bool, error) {
	return func(raw json.RawMessage) ([]D, bool, error) {
		var docs []D
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, false, err
		}
		docs = Select(collection, docs)
		return docs, len(docs) > 0, nil
	}
}

// decodeOne decodes a single document. Documents that are inactive, invalid or
// empty count as absent.
func decodeOne[D any](collection string) func(json.RawMessage) (D, bool, error) {
	return func(raw json.RawMessage) (D, bool, error) {
		var doc D
		if err := json.Unmarshal(raw, &doc); err != nil {
			return doc, false, err
		}

		if d, ok := any(doc).(Document); ok {
			if len(Select(collection, []Document{d})) == 0 {
				return doc, false, nil
			}
		}
		if e, ok := any(doc).(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
			return doc, false, nil
		}
		return doc, true, nil
	}
}

type slugRow struct {
	Slug string `json:"slug"`
}

func decodeSlugs(raw json.RawMessage) ([]string, bool, error) {
	var rows []slugRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false, err
	}

	slugs := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Slug != "" {
			slugs = append(slugs, row.Slug)
		}
	}
	return slugs, len(slugs) > 0, nil
}
