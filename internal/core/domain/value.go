package domain

// ValueType identifies which variant a Value holds.
type ValueType uint8

const (
	// NullValue is the JSON null literal and the zero Value.
	NullValue ValueType = iota
	// BoolValue is true or false.
	BoolValue
	// NumberValue keeps the literal text of a JSON number.
	NumberValue
	// StringValue is a JSON string.
	StringValue
	// ArrayValue is an ordered list of values.
	ArrayValue
	// ObjectValue is a keyed collection of values.
	ObjectValue
)

// String returns the JSON name of the type.
func (t ValueType) String() string {
	switch t {
	case NullValue:
		return "null"
	case BoolValue:
		return "boolean"
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case ArrayValue:
		return "array"
	case ObjectValue:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON document node. Exactly one payload field is meaningful,
// selected by its type.
type Value struct {
	typ  ValueType
	b    bool
	text string
	arr  []Value
	obj  *Object
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{typ: BoolValue, b: b} }

// Number wraps the literal text of a JSON number.
func Number(literal string) Value { return Value{typ: NumberValue, text: literal} }

// String wraps a string.
func String(s string) Value { return Value{typ: StringValue, text: s} }

// Array wraps a list of values.
func Array(items []Value) Value { return Value{typ: ArrayValue, arr: items} }

// ObjectOf wraps an object. A nil object is treated as empty.
func ObjectOf(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{typ: ObjectValue, obj: o}
}

// Type returns the variant held by v.
func (v Value) Type() ValueType { return v.typ }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.b, v.typ == BoolValue }

// AsNumber returns the literal text of a number.
func (v Value) AsNumber() (string, bool) {
	if v.typ != NumberValue {
		return "", false
	}
	return v.text, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.typ != StringValue {
		return "", false
	}
	return v.text, true
}

// AsArray returns the array items.
func (v Value) AsArray() ([]Value, bool) {
	if v.typ != ArrayValue {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the object payload.
func (v Value) AsObject() (*Object, bool) {
	if v.typ != ObjectValue {
		return nil, false
	}
	return v.obj, true
}

// Object is a JSON object that remembers the order keys were first seen.
// Setting an existing key replaces its value in place.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores value under key.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in first-seen order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Range calls fn for each entry in first-seen order until fn returns false.
func (o *Object) Range(fn func(key string, value Value) bool) {
	for _, key := range o.keys {
		if !fn(key, o.values[key]) {
			return
		}
	}
}
