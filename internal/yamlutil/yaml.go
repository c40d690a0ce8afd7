// Package yamlutil wraps YAML parsing so callers never import the YAML
// library directly. Decoding is strict: configuration typos surface as
// errors instead of being silently dropped.
package yamlutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown fields. Decode
// errors carry the offending source line.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %s", yaml.FormatError(err, false, true))
	}
	return nil
}

// Marshal encodes v as block-style YAML. Strings with line breaks are
// written double-quoted so they decode back unchanged.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.CustomMarshaler(marshalString))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

func marshalString(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\n\r") {
		return []byte(strconv.Quote(s)), nil
	}
	return yaml.Marshal(s)
}
