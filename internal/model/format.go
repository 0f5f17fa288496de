package model

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how the state snapshot is rendered.
type Format string

const (
	// FormatJSON renders the snapshot as indented JSON in catalog order.
	FormatJSON Format = "json"
	// FormatYAML renders the snapshot as a YAML mapping in catalog order.
	FormatYAML Format = "yaml"
	// FormatTable renders the snapshot as a category/check/status table.
	FormatTable Format = "table"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported values.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat normalizes a user supplied format name. An empty value means JSON.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatTable:
		return FormatTable, nil
	}

	return "", fmt.Errorf("%w %q (want json, yaml or table)", ErrUnknownFormat, value)
}
