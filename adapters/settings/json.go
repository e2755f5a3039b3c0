package settings

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"
)

// JSONSource reads settings from a JSON object without decoding it up front
type JSONSource struct {
	doc gjson.Result
}

// NewJSONSource wraps a JSON document. The top level must be an object.
func NewJSONSource(data []byte) (*JSONSource, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("settings json is not valid")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.New("settings json must be an object")
	}
	return &JSONSource{doc: doc}, nil
}

// LoadJSONFile reads settings from a JSON file
func LoadJSONFile(path string) (*JSONSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}
	return NewJSONSource(data)
}

func (s *JSONSource) lookup(key string) gjson.Result {
	return s.doc.Get(gjson.Escape(key))
}

func (s *JSONSource) Has(key string) bool {
	return s.lookup(key).Exists()
}

func (s *JSONSource) Float(key string) (float64, bool) {
	r := s.lookup(key)
	if r.Type != gjson.Number {
		return 0, false
	}
	return r.Float(), true
}

func (s *JSONSource) Int(key string) (int, bool) {
	r := s.lookup(key)
	if r.Type != gjson.Number {
		return 0, false
	}
	f := r.Float()
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(r.Int()), true
}

func (s *JSONSource) Bool(key string) (bool, bool) {
	r := s.lookup(key)
	if r.Type != gjson.True && r.Type != gjson.False {
		return false, false
	}
	return r.Bool(), true
}

func (s *JSONSource) Text(key string) (string, bool) {
	r := s.lookup(key)
	if r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}
