package services

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// UnrepresentableMagnitude is returned for non-finite values. The engine's
// velocity clamp keeps results finite, but the formatter stays total no
// matter what callers hand it.
const UnrepresentableMagnitude = "beyond representable magnitude"

// scientificThreshold is the absolute value above which formatting switches
// to scientific notation.
const scientificThreshold = 1e50

// maxPlainFractionDigits caps the fraction digits of plain decimal output.
const maxPlainFractionDigits = 20

// mantissaDecimals is the fraction-digit count of the scientific mantissa.
const mantissaDecimals = 4

// NumberFormatter renders calculation outputs, which can span from tiny
// fractions to astronomically large dilated durations, as readable strings.
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter creates a formatter using English digit grouping.
func NewNumberFormatter() *NumberFormatter {
	return &NumberFormatter{printer: message.NewPrinter(language.English)}
}

// Format renders n as a human-readable string. It never fails: non-finite
// values become the UnrepresentableMagnitude sentinel, magnitudes above
// 10^50 switch to scientific notation, and everything else is a grouped
// decimal with trailing insignificant digits trimmed.
func (f *NumberFormatter) Format(n float64) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return UnrepresentableMagnitude
	}
	if math.Abs(n) > scientificThreshold {
		return f.scientific(n)
	}
	return f.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(maxPlainFractionDigits)))
}

// scientific renders n as "m × 10^e" with 1 <= |m| < 10.
func (f *NumberFormatter) scientific(n float64) string {
	exponent := int(math.Floor(math.Log10(math.Abs(n))))
	mantissa := n / math.Pow(10, float64(exponent))

	// Round before the range check so a mantissa like 9.99997 carries into
	// the exponent instead of rendering as 10.0000.
	scale := math.Pow(10, mantissaDecimals)
	mantissa = math.Round(mantissa*scale) / scale
	if math.Abs(mantissa) >= 10 {
		mantissa /= 10
		exponent++
	}

	return fmt.Sprintf("%.*f × 10^%d", mantissaDecimals, mantissa, exponent)
}
