package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Measurement is a numeric input that either arrived bare (a scalar) or as a
// [value, unit] pair. An empty Unit means the value carried no unit token.
type Measurement struct {
	Value float64
	Unit  string
	pair  bool
}

// Scalar builds a unitless measurement.
func Scalar(v float64) Measurement { return Measurement{Value: v} }

// WithUnit builds a value+unit measurement. The unit is lower-cased.
func WithUnit(v float64, unit string) Measurement {
	return Measurement{Value: v, Unit: strings.ToLower(unit), pair: true}
}

// IsScalar reports whether the measurement arrived without a unit slot.
func (m Measurement) IsScalar() bool { return !m.pair }

// ParseMeasurement decodes the encodings calculators receive in practice:
// numbers, numeric strings, booleans, and sequences whose first element is
// numeric and whose optional second element names the unit.
func ParseMeasurement(v any) (Measurement, bool) {
	if v == nil {
		return Measurement{}, false
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		if rv.Len() == 0 {
			return Measurement{}, false
		}
		n, ok := ToFloat(rv.Index(0).Interface())
		if !ok {
			return Measurement{}, false
		}
		unit := ""
		if rv.Len() > 1 {
			unit = fmt.Sprint(rv.Index(1).Interface())
		}
		return WithUnit(n, unit), true
	}

	n, ok := ToFloat(v)
	if !ok {
		return Measurement{}, false
	}
	return Scalar(n), true
}

// ToFloat converts a scalar encoding into a float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Celsius normalizes a temperature. A unit containing "c" is taken as
// Celsius, one containing "f" as Fahrenheit; no unit means Celsius already.
func (m Measurement) Celsius() float64 {
	switch {
	case strings.Contains(m.Unit, "c"):
		return m.Value
	case strings.Contains(m.Unit, "f"):
		return (m.Value - 32.0) * (5.0 / 9.0)
	}
	return m.Value
}

// Years normalizes an age. Scalars are taken as years.
func (m Measurement) Years() float64 {
	switch {
	case strings.Contains(m.Unit, "month"):
		return m.Value / 12.0
	case strings.Contains(m.Unit, "week"):
		return m.Value * 7.0 / 365.0
	case strings.Contains(m.Unit, "day"):
		return m.Value / 365.0
	}
	return m.Value
}

// Kilograms normalizes a mass. Scalars and unknown units are taken as
// kilograms.
func (m Measurement) Kilograms() float64 {
	u := strings.TrimSpace(m.Unit)
	switch {
	case u == "kg" || strings.HasPrefix(u, "kilo"):
		return m.Value
	case strings.HasPrefix(u, "lb") || strings.HasPrefix(u, "pound"):
		return m.Value * 0.453592
	case strings.HasPrefix(u, "oz") || strings.HasPrefix(u, "ounce"):
		return m.Value * 0.0283495
	case u == "g" || strings.HasPrefix(u, "gram"):
		return m.Value / 1000.0
	}
	return m.Value
}

// Centimeters normalizes a length. Scalars and unknown units are taken as
// centimeters.
func (m Measurement) Centimeters() float64 {
	u := strings.TrimSpace(m.Unit)
	switch {
	case u == "cm" || strings.HasPrefix(u, "centi"):
		return m.Value
	case u == "mm" || strings.HasPrefix(u, "milli"):
		return m.Value / 10.0
	case u == "m" || strings.HasPrefix(u, "meter") || strings.HasPrefix(u, "metre"):
		return m.Value * 100.0
	case u == "in" || strings.HasPrefix(u, "inch"):
		return m.Value * 2.54
	case u == "ft" || strings.HasPrefix(u, "foot") || strings.HasPrefix(u, "feet"):
		return m.Value * 30.48
	}
	return m.Value
}

// AsBool coerces the flag encodings seen in requests into a strict boolean.
// Strings are true only for "true", "1" or "yes" (any case); other values
// follow their zero value.
func AsBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		switch strings.ToLower(b) {
		case "true", "1", "yes":
			return true
		}
		return false
	}

	if n, ok := ToFloat(v); ok {
		return n != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
