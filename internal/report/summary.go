// =============================================================================
// Compute Sales - Summary Report
// =============================================================================
//
// This module renders the summary block printed to stdout and written to the
// results file. Both destinations receive identical text.
//
// OUTPUT STRUCTURE:
//
//   === SALES SUMMARY ===
//   Total: $1,234.50
//
//   Warnings:
//   Not found: Gadget
//   Negative quantity: Widget
//
//   Execution time: 0.000123 seconds
//
//   The Warnings block, including its trailing blank line, is omitted when
//   there are no notes.
//
// =============================================================================

package report

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary holds everything the report shows.
type Summary struct {
	// Header is the first line of the report.
	Header string

	// Total is the unrounded revenue. Rounding happens only when rendering.
	Total float64

	// Notes are the per-record diagnostics, in input order.
	Notes []string

	// Elapsed is the time spent loading and computing.
	Elapsed time.Duration
}

// Render returns the summary text, ending with a newline.
func (s Summary) Render() string {
	var b strings.Builder

	b.WriteString(s.Header)
	b.WriteString("\n")
	b.WriteString("Total: $")
	b.WriteString(FormatAmount(s.Total))
	b.WriteString("\n\n")

	if len(s.Notes) > 0 {
		b.WriteString("Warnings:\n")
		b.WriteString(strings.Join(s.Notes, "\n"))
		b.WriteString("\n\n")
	}

	b.WriteString("Execution time: ")
	b.WriteString(strconv.FormatFloat(s.Elapsed.Seconds(), 'f', 6, 64))
	b.WriteString(" seconds\n")

	return b.String()
}

// printer groups digits the way en-US amounts are written.
var printer = message.NewPrinter(language.English)

// FormatAmount rounds v to two decimals and groups the integer digits in
// thousands, e.g. 1234567.891 -> "1,234,567.89" and -5 -> "-5.00".
func FormatAmount(v float64) string {
	fixed := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")

	// Beyond int64 the digits are left ungrouped.
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + fixed
	}

	return sign + printer.Sprintf("%d", n) + "." + frac
}
