package types

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// floatRegex matches D.D, D., or .D with an optional sign and no
	// exponent form, per spec.md §4.1 ("No exponent form").
	floatRegex   = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)$`)
	integerRegex = regexp.MustCompile(`^[+-]?\d+$`)
)

// dateLayouts enumerates every accepted calendar-date text layout, grouped
// by the order spec.md §4.1 lists them in the original pattern table:
// YYYY-MM-DD style, then YYYY-DD-MM style, then MM-DD-YYYY style.
var dateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02", "20060102",
	"2006-02-01", "2006/02/01", "2006.02.01", "20060201",
	"01-02-2006", "01/02/2006", "01.02.2006", "01022006",
}

// timeLayouts enumerates every accepted wall-clock-time text layout. The
// ".999999" fractional marker makes the fraction optional on parse and,
// when present, accepts any number of fractional digits.
var timeLayouts = []string{
	"15:04:05.999999", "15:04:05", "15:04", "150405", "1504",
}

// timeLayouts12Hour enumerates the 12-hour variants; callers must uppercase
// the candidate text before attempting these, since Go's "PM" layout token
// only matches the literal uppercase form.
var timeLayouts12Hour = []string{
	"3:04:05.999999 PM", "3:04:05 PM", "3:04 PM", "3:04:05PM", "3:04PM",
}

// datetimeLayouts combines every date layout with the literal separator "T"
// and every time layout (24-hour and 12-hour), plus the fully compact
// YYYYMMDDHHMMSS[.ffffff] form.
var datetimeLayouts = buildDatetimeLayouts()

func buildDatetimeLayouts() []string {
	layouts := make([]string, 0, len(dateLayouts)*(len(timeLayouts)+len(timeLayouts12Hour))+2)
	for _, d := range dateLayouts {
		for _, t := range timeLayouts {
			layouts = append(layouts, d+"T"+t)
		}
		for _, t := range timeLayouts12Hour {
			layouts = append(layouts, d+"T"+t)
		}
	}
	layouts = append(layouts, "20060102150405.999999", "20060102150405")
	return layouts
}

func prepare(value any, trim bool) (text string, isString bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	if trim {
		s = strings.TrimSpace(s)
	}
	return s, true
}

// IsNoneLike reports whether value represents an absent value: a nil, or
// text equal (case-insensitively) to "none" or "null".
func IsNoneLike(value any, trim bool) bool {
	if value == nil {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	switch strings.ToLower(text) {
	case "none", "null":
		return true
	default:
		return false
	}
}

// IsEmptyLike reports whether value is the empty string, or, when trim is
// true, a string containing only whitespace.
func IsEmptyLike(value any, trim bool) bool {
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	return text == ""
}

// IsBoolLike reports whether value is already a bool, or text equal
// (case-insensitively) to "true" or "false".
func IsBoolLike(value any, trim bool) bool {
	if _, ok := value.(bool); ok {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	switch strings.ToLower(text) {
	case "true", "false":
		return true
	default:
		return false
	}
}

// IsIntLike reports whether value is already an int64, or text matching an
// optionally signed decimal integer.
func IsIntLike(value any, trim bool) bool {
	if _, ok := value.(int64); ok {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	if text == "" {
		return false
	}
	return integerRegex.MatchString(text)
}

// IsFloatLike reports whether value is already a float64, or text matching
// a signed D.D, D., or .D decimal literal. There is no exponent form.
func IsFloatLike(value any, trim bool) bool {
	if _, ok := value.(float64); ok {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	if text == "" {
		return false
	}
	return floatRegex.MatchString(text)
}

func matchesAnyLayout(text string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDateLike reports whether value is already a Date, or text matching one
// of the accepted calendar-date layouts.
func IsDateLike(value any, trim bool) bool {
	if _, ok := value.(Date); ok {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	_, matched := matchesAnyLayout(text, dateLayouts)
	return matched
}

// IsTimeLike reports whether value is already a ClockTime, or text matching
// one of the accepted wall-clock-time layouts (24-hour or 12-hour).
func IsTimeLike(value any, trim bool) bool {
	if _, ok := value.(ClockTime); ok {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	if _, matched := matchesAnyLayout(text, timeLayouts); matched {
		return true
	}
	_, matched := matchesAnyLayout(strings.ToUpper(text), timeLayouts12Hour)
	return matched
}

// IsDatetimeLike reports whether value is already a DateTime, or text
// matching a DATE layout, the literal "T", and a TIME layout.
func IsDatetimeLike(value any, trim bool) bool {
	if _, ok := value.(DateTime); ok {
		return true
	}
	text, ok := prepare(value, trim)
	if !ok {
		return false
	}
	if _, matched := matchesAnyLayout(text, datetimeLayouts); matched {
		return true
	}
	_, matched := matchesAnyLayout(strings.ToUpper(text), upper12HourDatetimeLayouts())
	return matched
}

func upper12HourDatetimeLayouts() []string {
	layouts := make([]string, 0, len(dateLayouts)*len(timeLayouts12Hour))
	for _, d := range dateLayouts {
		for _, t := range timeLayouts12Hour {
			layouts = append(layouts, d+"T"+t)
		}
	}
	return layouts
}

// ToBool converts value to a bool, returning def if value is not bool-like.
func ToBool(value any, def *bool, trim bool) *bool {
	if b, ok := value.(bool); ok {
		return &b
	}
	text, ok := prepare(value, trim)
	if !ok {
		return def
	}
	switch strings.ToLower(text) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return def
	}
}

// ToInt converts value to an int64, returning def if value is not int-like.
func ToInt(value any, def *int64, trim bool) *int64 {
	if i, ok := value.(int64); ok {
		return &i
	}
	text, ok := prepare(value, trim)
	if !ok {
		return def
	}
	if !integerRegex.MatchString(text) {
		return def
	}
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return def
	}
	return &parsed
}

// ToFloat converts value to a float64, returning def if value is not
// float-like.
func ToFloat(value any, def *float64, trim bool) *float64 {
	if f, ok := value.(float64); ok {
		return &f
	}
	text, ok := prepare(value, trim)
	if !ok {
		return def
	}
	if !floatRegex.MatchString(text) {
		return def
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return def
	}
	return &parsed
}

// ToDate converts value to a Date, returning def if value does not match an
// accepted calendar-date layout.
func ToDate(value any, def *Date, trim bool) *Date {
	if d, ok := value.(Date); ok {
		return &d
	}
	text, ok := prepare(value, trim)
	if !ok {
		return def
	}
	t, matched := matchesAnyLayout(text, dateLayouts)
	if !matched {
		return def
	}
	d := newDate(t)
	return &d
}

// ToTime converts value to a ClockTime, returning def if value does not
// match an accepted wall-clock-time layout.
func ToTime(value any, def *ClockTime, trim bool) *ClockTime {
	if c, ok := value.(ClockTime); ok {
		return &c
	}
	text, ok := prepare(value, trim)
	if !ok {
		return def
	}
	if t, matched := matchesAnyLayout(text, timeLayouts); matched {
		c := newClockTime(t)
		return &c
	}
	if t, matched := matchesAnyLayout(strings.ToUpper(text), timeLayouts12Hour); matched {
		c := newClockTime(t)
		return &c
	}
	return def
}

// ToDatetime converts value to a DateTime, returning def if value does not
// match an accepted date-T-time layout.
func ToDatetime(value any, def *DateTime, trim bool) *DateTime {
	if dt, ok := value.(DateTime); ok {
		return &dt
	}
	text, ok := prepare(value, trim)
	if !ok {
		return def
	}
	if t, matched := matchesAnyLayout(text, datetimeLayouts); matched {
		dt := DateTime(t)
		return &dt
	}
	if t, matched := matchesAnyLayout(strings.ToUpper(text), upper12HourDatetimeLayouts()); matched {
		dt := DateTime(t)
		return &dt
	}
	return def
}

// InferType classifies value into exactly one DataType, trying variants in
// the fixed precedence order spec.md §4.1 specifies: NONE, BOOLEAN,
// DATETIME, TIME, DATE, INTEGER, FLOAT, EMPTY, STRING.
func InferType(value any, trim bool) DataType {
	switch {
	case IsNoneLike(value, trim):
		return NONE
	case IsBoolLike(value, trim):
		return BOOLEAN
	case IsDatetimeLike(value, trim):
		return DATETIME
	case IsTimeLike(value, trim):
		return TIME
	case IsDateLike(value, trim):
		return DATE
	case IsIntLike(value, trim):
		return INTEGER
	case IsFloatLike(value, trim):
		return FLOAT
	case IsEmptyLike(value, trim):
		return EMPTY
	default:
		return STRING
	}
}
