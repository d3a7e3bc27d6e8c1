package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	switch raw := v.Raw.(type) {
	case int:
		return raw, nil
	case int64:
		return int(raw), nil
	}
	return 0, errors.Errorf("value is not an int: %T", v.Raw)
}

// Float returns the value as a float64.
func (v Value) Float() (float64, error) {
	f, ok := v.Raw.(float64)
	if !ok {
		return 0, errors.Errorf("value is not a float64: %T", v.Raw)
	}
	return f, nil
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Compare totally orders two values, returning -1, 0, or 1.
// Numbers compare numerically across int/uint/float kinds, strings
// lexically, bools false-before-true, and times chronologically.
// Nil sorts before everything else. Any other kind compares by its
// string form, which is the supported restriction for composite
// field types.
func (v Value) Compare(other Value) int {
	if v.Raw == nil || other.Raw == nil {
		return boolCompare(other.Raw == nil, v.Raw == nil)
	}

	a, aNum := asFloat(v.Raw)
	b, bNum := asFloat(other.Raw)
	if aNum && bNum {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}

	switch raw := v.Raw.(type) {
	case string:
		if s, ok := other.Raw.(string); ok {
			return strings.Compare(raw, s)
		}
	case bool:
		if b, ok := other.Raw.(bool); ok {
			return boolCompare(raw, b)
		}
	case time.Time:
		if t, ok := other.Raw.(time.Time); ok {
			return raw.Compare(t)
		}
	}

	return strings.Compare(v.String(), other.String())
}

// unexported

func asFloat(raw any) (float64, bool) {
	switch num := raw.(type) {
	case int:
		return float64(num), true
	case int8:
		return float64(num), true
	case int16:
		return float64(num), true
	case int32:
		return float64(num), true
	case int64:
		return float64(num), true
	case uint:
		return float64(num), true
	case uint8:
		return float64(num), true
	case uint16:
		return float64(num), true
	case uint32:
		return float64(num), true
	case uint64:
		return float64(num), true
	case float32:
		return float64(num), true
	case float64:
		return num, true
	}
	return 0, false
}

func boolCompare(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}

// Record is a row keyed by field name, as produced by file-backed sources.
type Record map[string]any
