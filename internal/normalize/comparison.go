package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// NoComparisonMessage показывается, когда в ответе нет данных сравнения
const NoComparisonMessage = "No comparison data available"

// служебные ключи ответа, не являющиеся атрибутами сравнения
var comparisonMetaKeys = map[string]bool{"status": true, "summary": true, "winner": true, "comparison": true}

// ComparisonPayload resolves where the comparison lives in a response:
// a string "comparison" field is parsed as JSON and kept as the raw string
// when parsing fails, any other non-empty "comparison" value is used as is,
// otherwise the whole response is the payload.
func ComparisonPayload(data any) any {
	obj, ok := record.From(data)
	if !ok {
		return data
	}
	v, present := obj.Value("comparison")
	if !present {
		return data
	}
	switch c := v.(type) {
	case string:
		if c == "" {
			return data
		}
		parsed, err := record.Decode([]byte(c))
		if err != nil {
			return c
		}
		return parsed
	case bool:
		if !c {
			return data
		}
		return c
	default:
		return c
	}
}

// NormalizeComparison builds the comparison view. first and second carry the
// requested activity ids and display names; an empty name falls back to the id.
func NormalizeComparison(data any, first, second domain.ComparedActivity) domain.Comparison {
	first = withName(first)
	second = withName(second)

	out := domain.Comparison{
		Query:       fmt.Sprintf("Comparing %s vs %s", first.Name, second.Name),
		Status:      "success",
		Activity1:   first,
		Activity2:   second,
		Differences: record.Record{},
		Raw:         data,
	}
	out.Activity1.Data = record.Record{}
	out.Activity2.Data = record.Record{}

	if top, ok := record.From(data); ok {
		if s := top.String("status"); s != "" {
			out.Status = s
		}
		out.Summary = top["summary"]
		out.Winner = top["winner"]
	}

	payload := ComparisonPayload(data)
	obj, isObject := record.From(payload)
	if !isObject {
		if s, ok := payload.(string); ok {
			out.Raw = s
		}
		out.Source = domain.ComparisonSourceNone
		out.Attributes = []string{}
		return out
	}

	if valid, _ := ComparisonSchema.Check(obj); valid {
		out.Activity1.Data, _ = obj.Object("activity1")
		out.Activity2.Data, _ = obj.Object("activity2")
		if diff, ok := obj.Object("differences"); ok {
			out.Differences = diff
		}
		out.Source = domain.ComparisonSourceSchema
	} else {
		scanComparison(obj, &out)
		out.Source = domain.ComparisonSourceHeuristic
	}

	out.Attributes = comparisonAttributes(obj, out.Activity1.Data, out.Activity2.Data)
	out.Available = len(out.Attributes) > 0 || len(out.Differences) > 0
	if !out.Available {
		out.Source = domain.ComparisonSourceNone
	}
	return out
}

func scanComparison(obj record.Record, out *domain.Comparison) {
	if a, ok := obj.Object("activity1"); ok {
		out.Activity1.Data = a
	}
	if a, ok := obj.Object("activity2"); ok {
		out.Activity2.Data = a
	}
	if d, ok := obj.Object("differences"); ok {
		out.Differences = d
	}
	if len(out.Activity1.Data) > 0 {
		return
	}

	act1 := record.Record{}
	act2 := record.Record{}
	for k, v := range out.Activity2.Data {
		act2[k] = v
	}
	for k, v := range obj {
		// сами контейнеры activity1/activity2 атрибутами не считаются
		if k == "activity1" || k == "activity2" || k == "differences" {
			continue
		}
		lk := strings.ToLower(k)
		if strings.Contains(lk, "activity1") {
			act1[k] = v
		}
		if strings.Contains(lk, "activity2") {
			act2[k] = v
		}
	}
	out.Activity1.Data = act1
	out.Activity2.Data = act2
}

// comparisonAttributes - объединение ключей обеих активностей; если их нет,
// используются ключи самого payload без служебных
func comparisonAttributes(payload, a1, a2 record.Record) []string {
	set := map[string]struct{}{}
	for k := range a1 {
		set[k] = struct{}{}
	}
	for k := range a2 {
		set[k] = struct{}{}
	}
	if len(set) == 0 {
		for k := range payload {
			if comparisonMetaKeys[k] || k == "activity1" || k == "activity2" || k == "differences" {
				continue
			}
			set[k] = struct{}{}
		}
	}
	attrs := make([]string, 0, len(set))
	for k := range set {
		attrs = append(attrs, k)
	}
	sort.Strings(attrs)
	return attrs
}

func withName(a domain.ComparedActivity) domain.ComparedActivity {
	if a.Name == "" {
		a.Name = a.ID
	}
	return a
}

// stringify приводит элемент списка к строке для отображения
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
