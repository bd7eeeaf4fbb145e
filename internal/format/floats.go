package format

import "strings"

// FloatPrinter renders floating point values in fixed notation.
type FloatPrinter struct {
	Precision int
}

// DefaultFloatPrinter prints two digits after the decimal point.
func DefaultFloatPrinter() FloatPrinter {
	return FloatPrinter{Precision: DefaultPrecision}
}

func (p FloatPrinter) Format(v float64) string {
	return formatFloat(v, 'f', p.precision())
}

// FormatSlice renders values space separated inside brackets, e.g. "[1.00 2.50]".
func (p FloatPrinter) FormatSlice(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Format(v))
	}
	b.WriteByte(']')
	return b.String()
}

func (p FloatPrinter) precision() int {
	if p.Precision < 0 {
		return 0
	}
	return p.Precision
}
