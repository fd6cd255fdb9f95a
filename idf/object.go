// Package idf implements the EnergyPlus Input Data File object model
// and its deterministic field-positional emitter (C1). Each IDF object
// kind is a distinct Go type with a compile-time field list in IDD
// order; there is no single dynamic struct-with-string-fields variant.
// The emitter dispatches on type, never reorders fields, and never
// validates references — that is the validate package's job.
package idf

import (
	"fmt"
	"strconv"
)

// Field is one positional value plus its IDD comment.
type Field struct {
	Value   string
	Comment string
}

// F builds a Field from any printable value using its natural
// (minimal, lossless) decimal or string form.
func F(value interface{}, comment string) Field {
	return Field{Value: render(value), Comment: comment}
}

func render(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case Autosize:
		return "autosize"
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case int:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Autosize marks a numeric field as EnergyPlus "autosize".
type Autosize struct{}

func formatFloat(f float64) string {
	// Minimal lossless decimal: the shortest plain decimal that parses
	// back to exactly f, with no exponent and no point for integral
	// values.
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Object is implemented by every IDF object kind. Kind returns the IDD
// object name (e.g. "Zone", "BuildingSurface:Detailed"); Name returns
// the object's own name field, or "" for unnamed/singleton kinds;
// Fields returns the field list in IDD order, ready for emission.
type Object interface {
	Kind() string
	Name() string
	Fields() []Field
}
