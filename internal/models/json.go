package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonValue serializes a document column for storage.
func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}
	return b, nil
}

// jsonScan restores a document column; NULL leaves the target zero-valued.
func jsonScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
}

// StringList is a JSON array of strings stored in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsonValue(l)
}

func (l *StringList) Scan(value interface{}) error {
	return jsonScan(l, value)
}
