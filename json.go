package hashmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// MarshalJSON encodes the map as a JSON object, with entries in iteration
// order. Keys must be strings or integers; any other key type results in an
// error.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for it := m.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		kString, err := convertKey(k)
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kBytes, err := json.Marshal(kString)
		if err != nil {
			return nil, err
		}
		buf.Write(kBytes)
		buf.WriteByte(':')
		vBytes, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// convertKey converts a map key to a string for use as a JSON object key.
func convertKey(k any) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	v := reflect.ValueOf(k)
	if v.IsValid() {
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(v.Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return strconv.FormatUint(v.Uint(), 10), nil
		}
	}
	return "", fmt.Errorf("unsupported key type %T", k)
}
