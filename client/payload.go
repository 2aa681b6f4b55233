package client

import (
	"reflect"
)

// Payload is the JSON object sent to the gateway.
type Payload map[string]any

// Merge deep merges extra into a copy of base. Nested objects merge key by key, lists
// are concatenated and any other collision takes the value from extra. Neither
// argument is modified.
func Merge(base, extra Payload) Payload {
	out := make(Payload, len(base)+len(extra))
	for k, v := range base {
		out[k] = clone(v)
	}
	for k, v := range extra {
		out[k] = mergeValue(out[k], v)
	}
	return out
}

func mergeValue(base, extra any) any {
	if base == nil {
		return clone(extra)
	}
	if bm, ok := asMap(base); ok {
		if em, ok := asMap(extra); ok {
			return Merge(bm, em)
		}
		return clone(extra)
	}
	if bl, ok := asList(base); ok {
		if el, ok := asList(extra); ok {
			for i := range el {
				bl = append(bl, clone(el[i]))
			}
			return bl
		}
	}
	return clone(extra)
}

func asMap(v any) (Payload, bool) {
	switch m := v.(type) {
	case Payload:
		return m, true
	case map[string]any:
		return Payload(m), true
	case map[string]string:
		out := make(Payload, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		return append([]any(nil), l...), true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func clone(v any) any {
	if m, ok := asMap(v); ok {
		return Merge(nil, m)
	} else if l, ok := asList(v); ok {
		for i := range l {
			l[i] = clone(l[i])
		}
		return l
	}
	return v
}

// Clone returns a deep copy of p.
func (p Payload) Clone() Payload {
	return Merge(nil, p)
}

// Set returns p with key set, allocating p when nil.
func (p Payload) Set(key string, val any) Payload {
	if p == nil {
		p = Payload{}
	}
	p[key] = val
	return p
}

// SetIf sets key only when ok.
func (p Payload) SetIf(ok bool, key string, val any) Payload {
	if !ok {
		return p
	}
	return p.Set(key, val)
}
