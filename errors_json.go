package validify

import (
	gojson "github.com/goccy/go-json"
)

// JSON shapes mirror what API error responses expect: field errors carry a
// location and the violation tag, schema errors a name; code and message are
// present only when set.

type fieldErrorJSON struct {
	Location string `json:"location"`
	Type     string `json:"type"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

type schemaErrorJSON struct {
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

func (e *FieldError) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(fieldErrorJSON{
		Location: e.Location.String(),
		Type:     e.Kind,
		Code:     e.Code,
		Message:  e.Message,
	})
}

func (e *SchemaError) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(schemaErrorJSON{
		Name:    e.Name,
		Message: e.Message,
	})
}

func (e Errors) MarshalJSON() ([]byte, error) {
	// Marshal as a plain array; each element renders through its own variant.
	out := make([]gojson.RawMessage, len(e))
	for i, err := range e {
		raw, merr := gojson.Marshal(err)
		if merr != nil {
			return nil, merr
		}
		out[i] = raw
	}
	return gojson.Marshal(out)
}
