// Package record provides permissive access to loosely-typed JSON objects
// returned by the travel API or submitted by admin forms.
package record

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Record - JSON объект с нестрогой типизацией полей
type Record map[string]any

// Decode разбирает JSON в дерево any (объекты становятся map[string]any).
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// From приводит значение к Record, если это JSON объект.
func From(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	default:
		return nil, false
	}
}

// FromStruct перекладывает структуру в Record через её JSON представление.
func FromStruct(v any) Record {
	data, err := json.Marshal(v)
	if err != nil {
		return Record{}
	}
	out := Record{}
	if err := json.Unmarshal(data, &out); err != nil {
		return Record{}
	}
	return out
}

// Has reports whether key is present with a non-nil value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Value возвращает первое не-nil значение среди ключей.
func (r Record) Value(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String возвращает первое непустое строковое представление среди ключей.
func (r Record) String(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		if s != "" {
			return s
		}
	}
	return ""
}

// Float парсит первое значение среди ключей как число.
// Отсутствующие и нечисловые значения дают 0.
func (r Record) Float(keys ...string) float64 {
	v, ok := r.Value(keys...)
	if !ok {
		return 0
	}
	return ToFloat(v)
}

// Int - как Float, но с отбрасыванием дробной части.
func (r Record) Int(keys ...string) int {
	v, ok := r.Value(keys...)
	if !ok {
		return 0
	}
	return ToInt(v)
}

// Bool трактует значение как флаг формы: "false", "0" и пустая строка ложны,
// любая другая непустая строка истинна.
func (r Record) Bool(keys ...string) bool {
	v, ok := r.Value(keys...)
	if !ok {
		return false
	}
	return ToBool(v)
}

// Object возвращает вложенный объект по ключу.
func (r Record) Object(key string) (Record, bool) {
	return From(r[key])
}

// List возвращает вложенный массив по ключу.
func (r Record) List(key string) ([]any, bool) {
	l, ok := r[key].([]any)
	return l, ok
}

// Records возвращает объекты вложенного массива, пропуская прочие элементы.
func (r Record) Records(key string) []Record {
	l, ok := r.List(key)
	if !ok {
		return []Record{}
	}
	return Objects(l)
}

// Keys returns the record keys in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Objects оставляет в массиве только JSON объекты.
func Objects(list []any) []Record {
	out := make([]Record, 0, len(list))
	for _, item := range list {
		if rec, ok := From(item); ok {
			out = append(out, rec)
		}
	}
	return out
}

// leadingNumber - числовой префикс строки вида "12.5km"
var leadingNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)

// ToFloat permissively converts v to float64, 0 on failure. A string with
// trailing text ("12.5km") yields its leading number.
func ToFloat(v any) float64 {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if _, err := cast.ToFloat64E(s); err != nil {
			s = leadingNumber.FindString(s)
		}
		v = s
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToInt permissively converts v to int, truncating fractions.
func ToInt(v any) int {
	return int(ToFloat(v))
}

// ToBool converts v using form semantics.
func ToBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		s := strings.TrimSpace(b)
		if s == "" {
			return false
		}
		if parsed, err := cast.ToBoolE(s); err == nil {
			return parsed
		}
		return true
	default:
		if f, err := cast.ToFloat64E(v); err == nil {
			return f != 0 && !math.IsNaN(f)
		}
		return true
	}
}
