// Package output owns the on-disk artifact format: canonical JSON encoding,
// content fingerprinting, and the latest-state + snapshot writer.
package output

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"reflect"
)

// CanonicalEncode produces byte-identical compact JSON output
// - Stable key ordering (sorted alphabetically)
// - No insignificant whitespace, HTML escaping off, UTF-8
// - Every schema field always appears; empty strings and zero values are kept
func CanonicalEncode(v interface{}) ([]byte, error) {
	normalized := normalizeValue(v)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(normalized); err != nil {
		return nil, err
	}

	// Remove the trailing newline added by Encode
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	return result, nil
}

// PrettyEncode produces indented (2-space) JSON with the same stable key
// ordering as CanonicalEncode. Used for the human-readable artifacts.
func PrettyEncode(v interface{}) ([]byte, error) {
	normalized := normalizeValue(v)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(normalized); err != nil {
		return nil, err
	}

	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	return result, nil
}

// Fingerprint hashes the canonical encoding of v: SHA-256, lowercase hex.
func Fingerprint(v interface{}) (string, error) {
	data, err := CanonicalEncode(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// normalizeValue recursively normalizes a value for deterministic encoding.
// Structs become maps so encoding/json emits their keys sorted.
func normalizeValue(v interface{}) interface{} {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)

	// Dereference pointers
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Map:
		return normalizeMap(val)
	case reflect.Slice, reflect.Array:
		return normalizeSlice(val)
	case reflect.Struct:
		return normalizeStruct(val)
	case reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return normalizeValue(val.Interface())
	default:
		return v
	}
}

func normalizeMap(val reflect.Value) map[string]interface{} {
	result := make(map[string]interface{})
	iter := val.MapRange()
	for iter.Next() {
		result[iter.Key().String()] = normalizeValue(iter.Value().Interface())
	}
	return result
}

// normalizeSlice normalizes a slice or array. Nil and empty slices both encode
// as [] so a menu with no categories still round-trips as valid JSON.
func normalizeSlice(val reflect.Value) interface{} {
	length := val.Len()
	result := make([]interface{}, length)
	for i := 0; i < length; i++ {
		result[i] = normalizeValue(val.Index(i).Interface())
	}
	return result
}

// normalizeStruct converts a struct to a map keyed by JSON tag names.
// Fields tagged "-" are skipped; everything else is kept even when zero,
// since the artifact schema requires every field to be present.
func normalizeStruct(val reflect.Value) map[string]interface{} {
	result := make(map[string]interface{})
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		tagName, _ := parseJSONTag(jsonTag)
		if tagName == "" {
			tagName = field.Name
		}

		result[tagName] = normalizeValue(val.Field(i).Interface())
	}

	return result
}

// parseJSONTag parses a JSON struct tag into its name and options
func parseJSONTag(tag string) (name string, opts string) {
	for i, ch := range tag {
		if ch == ',' {
			return tag[:i], tag[i+1:]
		}
	}
	return tag, ""
}
