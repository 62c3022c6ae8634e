package tdl

import (
	"strings"

	"github.com/iancoleman/strcase"
)

type FieldKind string

const (
	KindText   FieldKind = "text"
	KindAmount FieldKind = "amount"
	KindDate   FieldKind = "date"
	KindBool   FieldKind = "bool"
)

// Field is one entry of an entity's field contract. A field absent from a response takes
// Default; a Required field without a default makes the record unusable.
type Field struct {
	Key      string
	Method   string
	Kind     FieldKind
	Required bool
	Default  string
	// Aliases are alternative upstream method names for the same value.
	Aliases []string
	// ReportOnly fields are requested from the XML API but have no secondary-channel column.
	ReportOnly bool
}

// ID is the TDL field name used in template-report requests.
func (f Field) ID() string {
	return "Fld" + strcase.ToCamel(f.Key)
}

// ReportTag is the element name a template-report response uses for the field.
func (f Field) ReportTag() string {
	return strings.ToUpper(f.ID())
}

// CollectionTags are the element names a collection-export response may use for the field.
func (f Field) CollectionTags() []string {
	tags := []string{strings.ToUpper(f.Method)}
	for _, a := range f.Aliases {
		tags = append(tags, strings.ToUpper(a))
	}
	return tags
}

// Column is the secondary-channel column for the field.
func (f Field) Column() string {
	return "$" + f.Method
}
