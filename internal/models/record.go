package models

// RawRecord is the channel-neutral intermediate form of one repeated upstream unit.
// Fields are keyed by the entity field key; absent fields are simply missing.
type RawRecord struct {
	Fields   map[string]string `json:"fields"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []RawRecord       `json:"children,omitempty"`
}

func NewRawRecord() RawRecord {
	return RawRecord{Fields: map[string]string{}}
}

func (r RawRecord) Value(key string) (string, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

func (r RawRecord) Attr(name string) string {
	return r.Attrs[name]
}
