// ABOUTME: JSON marshal helpers shared by the record layer.
// ABOUTME: Generic get/set/list over a kvBackend with typed decoding.
package store

import (
	"encoding/json"
	"fmt"
)

// getRecord reads and decodes one record, returning nil when absent.
func getRecord[T any](kv kvBackend, key string) (*T, error) {
	data, err := kv.get(key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if data == nil {
		return nil, nil
	}
	return unmarshalRecord[T](data)
}

// setRecord encodes and writes one record under the key.
func setRecord(kv kvBackend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// allRecords decodes every record under a prefix into a map keyed by
// the suffix after the prefix. Records that fail to decode are skipped.
func allRecords[T any](kv kvBackend, prefix string) (map[string]*T, error) {
	raw, err := kv.listByPrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	result := make(map[string]*T, len(raw))
	for key, data := range raw {
		v, err := unmarshalRecord[T](data)
		if err != nil {
			continue
		}
		result[key[len(prefix):]] = v
	}
	return result, nil
}

func unmarshalRecord[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &v, nil
}

func unmarshalInto(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
