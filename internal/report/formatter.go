// Package report renders the final conversion output for the tempconv CLI.
//
// The report shows the original value, the formula applied, and the
// converted value, e.g.:
//
//	(212°F - 32) * (5/9) = 100°C
//	(37°C * 9/5) + 32 = 98.6°F
//
// Values are rounded to at most two decimal places for display; a value
// that is mathematically whole renders with no decimal point. Rounding
// happens only here; the model package converts at full float64
// precision.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mmr-tortoise/tempconv/internal/model"
)

// displayPrecision is the maximum number of decimal places shown for a
// non-whole value. Two places keep the output stable and testable while
// staying close to the natural reading of a thermometer.
const displayPrecision = 2

// Conversion renders the one-line report for a completed conversion.
// The formula text is chosen by the original temperature's scale; both
// values are formatted with the same whole-number rule.
func Conversion(original, converted model.Temperature) string {
	origStr := FormatValue(original.Value)
	convStr := FormatValue(converted.Value)

	if original.Unit == model.Fahrenheit {
		return fmt.Sprintf("(%s°%s - 32) * (5/9) = %s°%s",
			origStr, original.Unit.Symbol(), convStr, converted.Unit.Symbol())
	}
	return fmt.Sprintf("(%s°%s * 9/5) + 32 = %s°%s",
		origStr, original.Unit.Symbol(), convStr, converted.Unit.Symbol())
}

// FormatValue renders a temperature magnitude for display. The value is
// rounded to displayPrecision decimal places; if the rounded value is
// whole it renders with zero decimals, otherwise trailing zeros are
// trimmed ("100", "98.6", "37.78").
func FormatValue(v float64) string {
	factor := math.Pow(10, displayPrecision)
	rounded := math.Round(v*factor) / factor

	// Rounding a small negative value can produce -0; display it as 0.
	if rounded == 0 {
		return "0"
	}
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
