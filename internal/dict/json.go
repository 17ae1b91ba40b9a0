package dict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"tactics-csv/internal/classifyerror"
)

// MarshalJSON serializes entries as a JSON object mapping category name to
// keyword list. The encoder writes categories in store order so that an
// export/import round-trip reproduces the store exactly.
func MarshalJSON(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(e.Category)
		if err != nil {
			return nil, fmt.Errorf("error encoding category name: %w", err)
		}
		buf.Write(key)
		buf.WriteString(": ")
		keywords := e.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		list, err := json.Marshal(keywords)
		if err != nil {
			return nil, fmt.Errorf("error encoding keywords for %q: %w", e.Category, err)
		}
		buf.Write(list)
	}
	if len(entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object mapping category name to a list of
// keyword strings, preserving key order. Any other shape fails with
// InvalidFormatError.
func UnmarshalJSON(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &classifyerror.InvalidFormatError{Reason: "payload is not valid JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &classifyerror.InvalidFormatError{Reason: "top level must be an object"}
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &classifyerror.InvalidFormatError{Reason: "payload is not valid JSON", Err: err}
		}
		// object keys are always strings in JSON
		category := keyTok.(string)

		keywords, err := decodeKeywordList(dec, category)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Category: category, Keywords: keywords})
	}

	if _, err := dec.Token(); err != nil {
		return nil, &classifyerror.InvalidFormatError{Reason: "payload is not valid JSON", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &classifyerror.InvalidFormatError{Reason: "trailing data after dictionary object"}
	}
	return entries, nil
}

func decodeKeywordList(dec *json.Decoder, category string) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, &classifyerror.InvalidFormatError{Reason: "payload is not valid JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, &classifyerror.InvalidFormatError{
			Reason: fmt.Sprintf("value for category %q must be a list of strings", category),
		}
	}

	keywords := []string{}
	for dec.More() {
		elem, err := dec.Token()
		if err != nil {
			return nil, &classifyerror.InvalidFormatError{Reason: "payload is not valid JSON", Err: err}
		}
		kw, ok := elem.(string)
		if !ok {
			return nil, &classifyerror.InvalidFormatError{
				Reason: fmt.Sprintf("category %q contains a non-string keyword", category),
			}
		}
		keywords = append(keywords, kw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, &classifyerror.InvalidFormatError{Reason: "payload is not valid JSON", Err: err}
	}
	return keywords, nil
}

// ExportJSON serializes the store's current mapping.
func (s *Store) ExportJSON() ([]byte, error) {
	return MarshalJSON(s.Export())
}

// ImportJSON replaces the store wholesale from a serialized dictionary.
// On any error the existing store is left untouched.
func (s *Store) ImportJSON(data []byte) error {
	entries, err := UnmarshalJSON(data)
	if err != nil {
		return err
	}
	return s.ReplaceAll(entries)
}
