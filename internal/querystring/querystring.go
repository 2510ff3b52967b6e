// Package querystring encodes and decodes object-valued query parameters
// using bracket notation: customer[mobile][number]=9999999999.
//
// Nested maps become nested brackets, slices become key[]=v pairs, nil
// values are omitted and keys are written in sorted order. Brackets are
// left unescaped so the result matches what common JavaScript HTTP
// clients produce.
package querystring

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Encode serializes params into a query string without the leading '?'.
func Encode(params map[string]any) string {
	var pairs []string
	for _, key := range sortedKeys(params) {
		pairs = appendPairs(pairs, url.QueryEscape(key), params[key])
	}
	return strings.Join(pairs, "&")
}

func appendPairs(pairs []string, prefix string, value any) []string {
	switch v := value.(type) {
	case nil:
		return pairs
	case map[string]any:
		for _, key := range sortedKeys(v) {
			pairs = appendPairs(pairs, prefix+"["+url.QueryEscape(key)+"]", v[key])
		}
		return pairs
	case []any:
		for _, item := range v {
			pairs = appendPairs(pairs, prefix+"[]", item)
		}
		return pairs
	default:
		return append(pairs, prefix+"="+url.QueryEscape(scalarString(v)))
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode expands bracket-notation keys in values into nested maps.
// Plain keys map to their first value. When a key is used both as a
// scalar and as an object, the object wins.
func Decode(values url.Values) map[string]any {
	result := make(map[string]any)
	for _, rawKey := range sortedValueKeys(values) {
		vals := values[rawKey]
		if len(vals) == 0 {
			continue
		}
		path, ok := splitKey(rawKey)
		if !ok {
			if _, exists := result[rawKey]; !exists {
				result[rawKey] = vals[0]
			}
			continue
		}
		if path[len(path)-1] == "" {
			items := make([]any, 0, len(vals))
			for _, v := range vals {
				items = append(items, v)
			}
			insert(result, path[:len(path)-1], items)
			continue
		}
		insert(result, path, vals[0])
	}
	return result
}

func insert(root map[string]any, path []string, value any) {
	node := root
	for i, segment := range path {
		if i == len(path)-1 {
			if _, isMap := node[segment].(map[string]any); isMap {
				return
			}
			node[segment] = value
			return
		}
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[segment] = child
		}
		node = child
	}
}

// splitKey turns "a[b][c]" into ["a", "b", "c"]. A trailing "[]" yields a
// final empty segment. It reports false for keys without brackets or
// with malformed brackets.
func splitKey(key string) ([]string, bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return nil, false
	}
	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, false
		}
		segment := rest[1:end]
		if segment == "" && end+1 != len(rest) {
			return nil, false
		}
		path = append(path, segment)
		rest = rest[end+1:]
	}
	return path, true
}

func sortedValueKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
