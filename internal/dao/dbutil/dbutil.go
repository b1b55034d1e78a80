package dbutil

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ParamSummary returns a privacy-conscious summary of a parameter for error
// annotations. Values are never echoed; only their shape is.
//
// Rules:
// - name=null for nil pointers and sql.Null* with Valid=false
// - name=empty for empty strings
// - name=len=N for non-empty strings or slices/arrays
// - name=V for integers, floats and booleans
// - name=zero-time / name=non-zero-time for time.Time
func ParamSummary(name string, v any) string {
	switch x := v.(type) {
	case nil:
		return name + "=null"
	case sql.NullString:
		if !x.Valid {
			return name + "=null"
		}
		return summarizeString(name, x.String)
	case sql.NullInt32:
		if !x.Valid {
			return name + "=null"
		}
		return fmt.Sprintf("%s=%d", name, x.Int32)
	case sql.NullInt64:
		if !x.Valid {
			return name + "=null"
		}
		return fmt.Sprintf("%s=%d", name, x.Int64)
	case sql.NullBool:
		if !x.Valid {
			return name + "=null"
		}
		return fmt.Sprintf("%s=%t", name, x.Bool)
	case sql.NullTime:
		if !x.Valid {
			return name + "=null"
		}
		return summarizeTime(name, x.Time)
	case time.Time:
		return summarizeTime(name, x)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return name + "=null"
	}
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return name + "=null"
		}
		rv = rv.Elem()
	}
	if rv.Type() == reflect.TypeOf(time.Time{}) {
		return summarizeTime(name, rv.Interface().(time.Time))
	}
	switch rv.Kind() {
	case reflect.String:
		return summarizeString(name, rv.String())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("%s=len=%d", name, rv.Len())
	case reflect.Bool:
		return fmt.Sprintf("%s=%t", name, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%s=%d", name, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%s=%d", name, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%s=%g", name, rv.Float())
	default:
		return fmt.Sprintf("%s=%s", name, rv.Kind().String())
	}
}

func summarizeString(name, s string) string {
	if s == "" {
		return name + "=empty"
	}
	return fmt.Sprintf("%s=len=%d", name, len(s))
}

func summarizeTime(name string, t time.Time) string {
	if t.IsZero() {
		return name + "=zero-time"
	}
	return name + "=non-zero-time"
}

// ErrWrap returns a formatted error with an operation label and optional summaries.
// Example: ErrWrap("task.move", err, ParamSummary("task", id))
func ErrWrap(op string, err error, parts ...string) error {
	if err == nil {
		return nil
	}
	if len(parts) == 0 {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w; %s", op, err, strings.Join(parts, ","))
}
