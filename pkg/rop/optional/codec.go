package optional

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// IsZero lets encoding/json (omitzero) and yaml.v3 (omitempty) drop empty
// Optional fields instead of writing null.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// MarshalJSON writes the held value as if unwrapped. An empty Optional only
// reaches here when the field is not tagged omitzero.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Empty[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

func (o *Optional[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		*o = Empty[T]()
		return nil
	}

	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

func (d Dict[K, T]) MarshalJSON() ([]byte, error) {
	if d == nil {
		return jsonNull, nil
	}
	return json.Marshal(Compact(d))
}

func (d Dict[K, T]) MarshalYAML() (interface{}, error) {
	if d == nil {
		return nil, nil
	}
	return Compact(d), nil
}
