// Package model defines the domain types for the tempconv CLI.
//
// Unit and Temperature represent the two core concepts of the program:
// a temperature scale and a value measured on one. Both are value types
// passed around by copy; nothing in this package performs I/O.
package model

import (
	"fmt"
	"strings"
)

// Unit represents one of the two supported temperature scales.
// There is no "unset" variant: any Unit obtained through ParseUnit
// or the exported constants is guaranteed to be one of the two.
type Unit string

const (
	// Celsius is the metric temperature scale (water freezes at 0°C).
	Celsius Unit = "celsius"

	// Fahrenheit is the imperial temperature scale (water freezes at 32°F).
	Fahrenheit Unit = "fahrenheit"
)

// String returns the string representation of the Unit.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI messages and test failures.
func (u Unit) String() string {
	return string(u)
}

// Symbol returns the single-letter scale symbol used in the conversion
// report, "C" or "F".
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Name returns the capitalized scale name used in prompt text,
// "Celsius" or "Fahrenheit".
func (u Unit) Name() string {
	if u == Fahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

// IsValid checks whether the Unit value is one of the two
// predefined scales.
func (u Unit) IsValid() bool {
	switch u {
	case Celsius, Fahrenheit:
		return true
	default:
		return false
	}
}

// Opposite returns the other temperature scale. With exactly two scales
// this is total: Celsius maps to Fahrenheit and back.
func (u Unit) Opposite() Unit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// ParseUnit converts a string to a Unit. It accepts the single-letter
// tokens "c" and "f" as the primary contract, plus the full scale names,
// all case-insensitively and with surrounding whitespace ignored.
// Returns an error for anything else.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("invalid unit: %q (valid: c, f)", s)
	}
}

// Temperature is an immutable pairing of a magnitude and the scale it is
// measured on. Conversion returns a new Temperature; the original is
// never modified.
type Temperature struct {
	// Value is the magnitude in the scale named by Unit.
	Value float64

	// Unit is the scale the value is measured on.
	Unit Unit
}

// NewTemperature creates a Temperature from a magnitude and scale.
func NewTemperature(value float64, unit Unit) Temperature {
	return Temperature{Value: value, Unit: unit}
}

// ConvertTo returns a new Temperature expressed in the target scale.
// Converting to the Temperature's own scale is the identity (a copy is
// returned unchanged, not an error). The arithmetic is plain IEEE 754
// double precision; rounding for display is the report package's job.
func (t Temperature) ConvertTo(target Unit) Temperature {
	switch {
	case t.Unit == Fahrenheit && target == Celsius:
		return t.toCelsius()
	case t.Unit == Celsius && target == Fahrenheit:
		return t.toFahrenheit()
	default:
		return t
	}
}

// toCelsius applies (F − 32) × 5/9.
func (t Temperature) toCelsius() Temperature {
	return NewTemperature((t.Value-32.0)*(5.0/9.0), Celsius)
}

// toFahrenheit applies (C × 9/5) + 32.
func (t Temperature) toFahrenheit() Temperature {
	return NewTemperature((t.Value*(9.0/5.0))+32.0, Fahrenheit)
}
