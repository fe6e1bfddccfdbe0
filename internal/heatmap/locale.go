package heatmap

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of input dates and tooltip dates
const DateLayout = "2006-01-02"

// Locale carries month abbreviations. It is passed explicitly to the builder
// so formatting never depends on process-wide state.
type Locale struct {
	Name   string
	Months [12]string
}

// English month abbreviations
var English = Locale{
	Name:   "en",
	Months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// Chinese month abbreviations
var Chinese = Locale{
	Name:   "zh",
	Months: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
}

var locales = map[string]Locale{
	English.Name: English,
	Chinese.Name: Chinese,
}

// LookupLocale returns the locale registered under name (case-insensitive)
func LookupLocale(name string) (Locale, error) {
	l, ok := locales[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Locale{}, fmt.Errorf("unknown locale %q", name)
	}
	return l, nil
}

// MonthAbbrev returns the abbreviated name of m
func (l Locale) MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.Months[m-1]
}

// ParseDate parses a "YYYY-MM-DD" calendar date as UTC midnight
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDate formats a calendar date as "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatChange renders a signed day-over-day change, e.g. "+3", "-1", "+0"
func FormatChange(v int) string {
	return fmt.Sprintf("%+d", v)
}

// Tooltip renders the cell title
func Tooltip(p time.Time, value int) string {
	return fmt.Sprintf("%s - %s commits", FormatDate(p), FormatChange(value))
}
