package common

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const timeTextLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Comparer orders values the way the back office lists them: strings by the
// Spanish collation, numbers by difference, false before true and anything
// else by its textual form. A Comparer must not be shared between goroutines.
type Comparer struct {
	col *collate.Collator
}

func NewComparer() *Comparer {
	return &Comparer{col: collate.New(language.Spanish)}
}

// Strings compares two strings with the locale collation
func (c *Comparer) Strings(a, b string) int {
	if a == b {
		return 0
	}
	return c.col.CompareString(a, b)
}

// Numbers returns the sign of a-b
func Numbers(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Bools orders false before true
func Bools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// Times compares the textual form of two timestamps
func (c *Comparer) Times(a, b time.Time) int {
	if a.Equal(b) {
		return 0
	}
	return c.Strings(Text(a), Text(b))
}

// Values compares two dynamically typed values. Same-typed strings, numbers
// and booleans use their natural order; mismatched pairs and other types fall
// back to comparing their text.
func (c *Comparer) Values(a, b interface{}) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return c.Strings(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return Bools(x, y)
		}
	}
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return Numbers(x, y)
		}
	}
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return c.Strings(Text(a), Text(b))
}

// Text renders a value the way Values sees it when types do not line up
func Text(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.UTC().Format(timeTextLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.UTC().Format(timeTextLayout)
	case []string:
		return strings.Join(x, ",")
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func number(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
