package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Kind is the shape of a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a JSON-like configuration value. Mappings keep the order in
// which their keys were first introduced.
type Value struct {
	Kind Kind

	// Scalar holds a string, bool, int or float64 when Kind is KindScalar.
	Scalar any
	Items  []Value
	Map    *Map
}

// Null returns the null value.
func Null() Value { return Value{} }

// Scalar wraps a string, bool, int or float64.
func Scalar(v any) Value { return Value{Kind: KindScalar, Scalar: v} }

// Sequence wraps items.
func Sequence(items ...Value) Value { return Value{Kind: KindSequence, Items: items} }

// Mapping wraps m. A nil m becomes an empty mapping.
func Mapping(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{Kind: KindMapping, Map: m}
}

// IsEmpty reports whether v is null or an empty mapping.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindMapping:
		return v.Map.Len() == 0
	}
	return false
}

// Get returns the value at key when v is a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping {
		return Value{}, false
	}
	return v.Map.Get(key)
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindSequence:
		items := make([]Value, len(v.Items))
		for i, it := range v.Items {
			items[i] = it.Clone()
		}
		return Value{Kind: KindSequence, Items: items}
	case KindMapping:
		return Value{Kind: KindMapping, Map: v.Map.Clone()}
	}
	return v
}

// Equal reports deep equality, including mapping key order.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindScalar:
		return v.Scalar == o.Scalar
	case KindSequence:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.Map.Equal(o.Map)
	}
	return true
}

// Interface converts v to plain Go values: map[string]any, []any, scalars
// and nil. This is the shape handed to rules as options.
func (v Value) Interface() any {
	switch v.Kind {
	case KindScalar:
		return v.Scalar
	case KindSequence:
		out := make([]any, len(v.Items))
		for i, it := range v.Items {
			out[i] = it.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, v.Map.Len())
		for _, k := range v.Map.keys {
			out[k] = v.Map.vals[k].Interface()
		}
		return out
	}
	return nil
}

// FromGo converts plain Go values to a Value. Keys of Go maps are sorted
// since their iteration order is unspecified.
func FromGo(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case string, bool, int, float64:
		return Scalar(t), nil
	case int64:
		return Scalar(int(t)), nil
	case uint64:
		return Scalar(float64(t)), nil
	case float32:
		return Scalar(float64(t)), nil
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			v, err := FromGo(it)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Sequence(items...), nil
	case []string:
		items := make([]Value, len(t))
		for i, s := range t {
			items[i] = Scalar(s)
		}
		return Sequence(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return Value{}, err
			}
			m.Set(k, v)
		}
		return Mapping(m), nil
	}
	return Value{}, fmt.Errorf("unsupported configuration value of type %T", x)
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping mapping key order.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	out, err := fromNode(n)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		var x any
		if err := n.Decode(&x); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if x == nil {
			return Null(), nil
		}
		return FromGo(x)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			it, err := fromNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, it)
		}
		return Sequence(items...), nil
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			val, err := fromNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			m.Set(k.Value, val)
		}
		return Mapping(m), nil
	}
	return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %v", n.Line, n.Kind)
}

// MarshalYAML implements yaml.Marshaler, keeping mapping key order.
func (v Value) MarshalYAML() (any, error) {
	return v.node(), nil
}

func (v Value) node() *yaml.Node {
	switch v.Kind {
	case KindScalar:
		n := &yaml.Node{}
		_ = n.Encode(v.Scalar)
		return n
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		if len(v.Items) <= 3 && allScalars(v.Items) {
			n.Style = yaml.FlowStyle
		}
		for _, it := range v.Items {
			n.Content = append(n.Content, it.node())
		}
		return n
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range v.Map.keys {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				v.Map.vals[k].node())
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func allScalars(items []Value) bool {
	for _, it := range items {
		if it.Kind == KindMapping || it.Kind == KindSequence {
			return false
		}
	}
	return true
}

// Map is an insertion-ordered string-keyed mapping.
type Map struct {
	keys []string
	vals map[string]Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Len returns the number of keys. A nil Map is empty.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Set stores v under key. A new key goes last; an existing key keeps its
// place.
func (m *Map) Set(key string, v Value) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Delete removes key.
func (m *Map) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out.Set(k, m.vals[k].Clone())
	}
	return out
}

// Equal reports whether m and o hold equal values under the same keys in
// the same order.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	for i, k := range m.keys {
		if o.keys[i] != k || !m.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}
