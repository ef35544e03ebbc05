// Package validate holds the field rules shared by every admin write
// handler. Violations come back as plain errors whose text is safe to
// show next to the offending form field.
package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// NotBlank rejects values that are empty after trimming.
func NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// Price parses a price-like string. Empty is allowed only when optional;
// anything non-empty must parse as a non-negative number.
func Price(field, value string, optional bool) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if optional {
			return nil, nil
		}
		return nil, fmt.Errorf("%s is required", field)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	if f < 0 {
		return nil, fmt.Errorf("%s cannot be negative", field)
	}
	return &f, nil
}

// RawPrice applies the Price rules to a raw JSON value, accepting both
// a JSON number and a numeric string since older form builds send either.
func RawPrice(field string, raw json.RawMessage, optional bool) (*float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Price(field, "", optional)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Price(field, s, optional)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return Price(field, strconv.FormatFloat(f, 'f', -1, 64), optional)
	}
	return nil, fmt.Errorf("%s must be a number", field)
}

// ImageURL accepts an empty value; a non-empty value must be a
// well-formed absolute URL whose path ends in a known image extension
// (query string permitted after the extension, case-insensitive).
func ImageURL(field, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be a valid URL", field)
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if !imageExtensions[ext] {
		return fmt.Errorf("%s must point to an image file", field)
	}
	return nil
}

// AppendUnique adds value to a managed list field, rejecting blanks and
// case-sensitive exact duplicates.
func AppendUnique(field string, list []string, value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return list, fmt.Errorf("%s cannot be empty", field)
	}
	for _, existing := range list {
		if existing == value {
			return list, fmt.Errorf("%s already contains %q", field, value)
		}
	}
	return append(list, value), nil
}

// UniqueNonEmpty checks a whole submitted list at once by replaying it
// through AppendUnique: every entry non-blank, no case-sensitive
// duplicates.
func UniqueNonEmpty(field string, list []string) error {
	acc := make([]string, 0, len(list))
	var err error
	for _, v := range list {
		if acc, err = AppendUnique(field, acc, v); err != nil {
			return err
		}
	}
	return nil
}
