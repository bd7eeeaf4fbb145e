package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of digits after the decimal point used when
// callers have no preference.
const DefaultPrecision = 2

// fixedUpperBound is the largest magnitude still rendered in fixed notation.
const fixedUpperBound = 100.0

// Benchmark renders params as "name = value" pairs joined with ", ", in order.
//
// A value is written in scientific notation when its magnitude is below
// 2*10^-precision or above 100, and in fixed notation otherwise.
func Benchmark(params Params, precision int) (string, error) {
	if precision < 0 {
		return "", fmt.Errorf("precision must not be negative (got %d)", precision)
	}

	lower := 2 * math.Pow10(-precision)

	var b strings.Builder
	for i, p := range params {
		value, err := ToFloat(p.Value)
		if err != nil {
			return "", &ConversionError{Name: p.Name, Value: p.Value, Err: err}
		}

		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(" = ")

		magnitude := math.Abs(value)
		if magnitude < lower || magnitude > fixedUpperBound {
			b.WriteString(formatFloat(value, 'e', precision))
		} else {
			b.WriteString(formatFloat(value, 'f', precision))
		}
	}

	return b.String(), nil
}

// ConversionError reports a parameter value that could not be read as a number.
type ConversionError struct {
	Name  string
	Value any
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("parameter %s: cannot convert %v (%T) to float: %v", e.Name, e.Value, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ErrNotNumeric is returned by ToFloat for values of a non-numeric type.
var ErrNotNumeric = errors.New("value is not numeric")

func formatFloat(v float64, verb byte, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, verb, precision, 64)
}
