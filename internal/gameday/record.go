package gameday

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedJSON is returned when a grid response is not valid JSON.
var ErrMalformedJSON = errors.New("malformed grid JSON")

// StripMode selects how StripUnknownFields decides which keys to drop.
type StripMode int

const (
	// StripPerRecord filters every record against the allow-list on its own.
	StripPerRecord StripMode = iota
	// StripFirstRecord drops only the non-allowed keys found in the first
	// record, from every record. Keys that appear only in later records are
	// kept.
	StripFirstRecord
)

// String returns the configuration name of the mode.
func (m StripMode) String() string {
	switch m {
	case StripFirstRecord:
		return "first-record"
	default:
		return "per-record"
	}
}

// ParseStripMode parses "per-record" or "first-record". Empty means per-record.
func ParseStripMode(s string) (StripMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-record":
		return StripPerRecord, nil
	case "first-record":
		return StripFirstRecord, nil
	default:
		return StripPerRecord, fmt.Errorf("unknown strip mode: %s (must be 'per-record' or 'first-record')", s)
	}
}

// Collect walks every object in a grid document and returns the ones that
// contain MarkerKey, in document order. An object nested inside another is
// visited before its parent. Records keep all their fields.
func Collect(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedJSON
	}

	records := make([]Record, 0)
	walk(gjson.ParseBytes(data), &records)
	return records, nil
}

func walk(node gjson.Result, records *[]Record) {
	switch {
	case node.IsObject():
		rec := make(Record)
		isGame := false
		node.ForEach(func(key, value gjson.Result) bool {
			walk(value, records)
			if key.Str == MarkerKey {
				isGame = true
			}
			rec[key.Str] = renderValue(value)
			return true
		})
		if isGame {
			*records = append(*records, rec)
		}
	case node.IsArray():
		node.ForEach(func(_, value gjson.Result) bool {
			walk(value, records)
			return true
		})
	}
}

// renderValue turns a JSON value into its CSV cell text. Booleans are
// capitalized to match files produced by earlier exports.
// Nested objects are consumed by the walk and render empty.
func renderValue(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	case gjson.True:
		return "True"
	case gjson.False:
		return "False"
	case gjson.JSON:
		if v.IsArray() {
			return v.Raw
		}
		return ""
	default:
		return ""
	}
}

// StripUnknownFields removes keys that are not in the allow-list.
// An empty slice is left untouched.
func StripUnknownFields(records []Record, mode StripMode) {
	if len(records) == 0 {
		return
	}

	if mode == StripFirstRecord {
		basis := make([]string, 0, len(records[0]))
		for key := range records[0] {
			basis = append(basis, key)
		}
		for _, key := range basis {
			if IsAllowed(key) {
				continue
			}
			for _, rec := range records {
				delete(rec, key)
			}
		}
		return
	}

	for _, rec := range records {
		for key := range rec {
			if !IsAllowed(key) {
				delete(rec, key)
			}
		}
	}
}
