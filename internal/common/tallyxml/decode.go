// Package tallyxml turns upstream response bodies into raw records.
package tallyxml

import (
	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

// Decode parses body and decodes it with the dialect of e.
func Decode(body []byte, e tdl.Entity) ([]models.RawRecord, error) {
	collection := e.Dialect == tdl.DialectCollection
	root, err := Parse(body, collection)
	if err != nil {
		return nil, err
	}
	if collection {
		return DecodeCollection(root, e), nil
	}
	return DecodeReport(root, e), nil
}

// DecodeReport splits the flat field sequence of a template report into records. A record
// starts at every occurrence of the first declared field.
func DecodeReport(root *Node, e tdl.Entity) []models.RawRecord {
	if len(e.Fields) == 0 {
		return nil
	}
	keys := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		keys[f.ReportTag()] = f.Key
	}
	start := e.Fields[0].ReportTag()

	var (
		records []models.RawRecord
		current *models.RawRecord
	)
	root.Walk(func(n *Node) bool {
		key, ok := keys[n.Name]
		if !ok {
			return true
		}
		if n.Name == start {
			if current != nil {
				records = append(records, *current)
			}
			r := models.NewRawRecord()
			current = &r
		}
		if current != nil {
			current.Fields[key] = n.Text
		}
		return false
	})
	if current != nil {
		records = append(records, *current)
	}
	return records
}

// DecodeCollection yields one record per record element, with nested entry lists as children.
func DecodeCollection(root *Node, e tdl.Entity) []models.RawRecord {
	fieldKeys := collectionKeys(e.Fields)
	entryKeys := collectionKeys(e.EntryFields)
	entryTags := make(map[string]bool, len(e.EntryTags))
	for _, t := range e.EntryTags {
		entryTags[t] = true
	}

	var records []models.RawRecord
	for _, n := range root.Find(e.RecordTag) {
		r := models.NewRawRecord()
		for _, a := range e.RecordAttrs {
			if v, ok := n.Attrs[a]; ok {
				if r.Attrs == nil {
					r.Attrs = map[string]string{}
				}
				r.Attrs[a] = v
			}
		}
		for _, c := range n.Children {
			if entryTags[c.Name] {
				entry := models.NewRawRecord()
				for _, ec := range c.Children {
					setField(entry.Fields, entryKeys, ec)
				}
				r.Children = append(r.Children, entry)
				continue
			}
			setField(r.Fields, fieldKeys, c)
		}
		records = append(records, r)
	}
	return records
}

func collectionKeys(fields []tdl.Field) map[string]string {
	keys := map[string]string{}
	for _, f := range fields {
		for _, tag := range f.CollectionTags() {
			keys[tag] = f.Key
		}
	}
	return keys
}

// setField keeps the first non-empty value when several tags map to one key.
func setField(fields map[string]string, keys map[string]string, n *Node) {
	key, ok := keys[n.Name]
	if !ok {
		return
	}
	if prev, seen := fields[key]; seen && prev != "" {
		return
	}
	fields[key] = n.Text
}
