package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats an ordered map into a single bracketed string, keeping insertion order.
// Example: {foo: 1, bar: true} => "[foo=1 bar=true]".
func OrderedMapToString(m *orderedmap.OrderedMap[string, any]) string {
	if m == nil || m.Len() == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for el := m.Front(); el != nil; el = el.Next() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(fmt.Sprintf("%s=%v", el.Key, el.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// KeyValsToOrderedMap builds an ordered map from slog-style keyvals. Non-string keys are formatted
// with fmt, and a trailing key without a value is ignored.
func KeyValsToOrderedMap(kv ...any) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}
		m.Set(key, kv[i+1])
	}
	return m
}
