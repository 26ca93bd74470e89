package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekOrdinals = []string{"첫째주", "둘째주", "셋째주", "넷째주"}

// WeekLabel maps a 1-based week index onto its ordinal label. Indexes
// outside 1-4 fall back to the generic "N주차" form so an unexpected
// bucket count still renders.
func WeekLabel(week int) string {
	if week >= 1 && week <= len(weekOrdinals) {
		return weekOrdinals[week-1]
	}
	return fmt.Sprintf("%d주차", week)
}

// The report API is not strict about its date encoding, so try the formats
// it has been seen to produce.
var reportDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006.01.02",
}

// FormatReportDate normalizes an upstream date string to "YYYY.MM.DD".
// Unparseable input is returned unchanged so history grouping still works
// on whatever key the API sent.
func FormatReportDate(s string) string {
	for _, layout := range reportDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006.01.02")
		}
	}
	return s
}

// FormatWon renders an amount as a comma-grouped won string, e.g. "12,000원".
func FormatWon(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String() + "원"
}
