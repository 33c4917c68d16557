package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// defaultKeySerializer implements KeySerializer using reflection-based
// serialization. Values serialize by structure rather than by Go type: a
// slice and an array holding equal elements produce the same segment, maps
// render as sorted key=value pairs, structs as exported field name:value
// pairs. Funcs, channels and unsafe pointers have no stable serial form
// and are rejected.
//
// The rendering is uniquely decodable: every container carries its element
// count and strings are quoted, so a delimiter inside an argument value can
// never make two distinct argument lists derive the same key.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from the function identity and its call
// arguments. Positional arguments keep call order inside a count-prefixed
// segment; named arguments are rendered as a trailing segment sorted by
// name, so supplying them in a different order derives the same key. Both
// segments are always present, which keeps a trailing positional map
// distinct from named arguments with the same contents.
func (s *defaultKeySerializer) SerializeKey(identity string, args []any, named map[string]any) (string, error) {
	elems := make([]string, len(args))
	for i, arg := range args {
		serialized, err := s.serializeValue(arg)
		if err != nil {
			return "", &SerializationError{Argument: fmt.Sprintf("args[%d]", i), Err: err}
		}
		elems[i] = serialized
	}
	argsPart := fmt.Sprintf("args[%d]:{%s}", len(elems), strings.Join(elems, ","))

	namedPart, err := s.serializeNamed(named)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{identity, argsPart, namedPart}, KeySeparator), nil
}

// serializeNamed renders named arguments sorted by name. Names are quoted
// like string values, so a delimiter inside a name cannot forge extra pairs.
func (s *defaultKeySerializer) serializeNamed(named map[string]any) (string, error) {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		serialized, err := s.serializeValue(named[name])
		if err != nil {
			return "", &SerializationError{Argument: fmt.Sprintf("named[%s]", name), Err: err}
		}
		pairs[i] = strconv.Quote(name) + "=" + serialized
	}

	return fmt.Sprintf("named[%d]:{%s}", len(pairs), strings.Join(pairs, ",")), nil
}

// serializeValue handles individual argument serialization based on type.
func (s *defaultKeySerializer) serializeValue(v any) (string, error) {
	if v == nil {
		return "nil", nil
	}

	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf(v)

	switch rt.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return "", fmt.Errorf("%s values have no stable serialization", rt.Kind())

	case reflect.Ptr:
		if rv.IsNil() {
			return "nil", nil
		}
		return s.serializeValue(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "seq:nil", nil
		}
		return s.serializeSequence(rv)

	case reflect.Array:
		return s.serializeSequence(rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil", nil
		}
		return s.serializeMap(rv)

	case reflect.Struct:
		return s.serializeStruct(rv, rt)

	case reflect.String:
		// Quoting keeps delimiters inside the value from reading as
		// element or segment boundaries.
		return strconv.Quote(rv.String()), nil

	case reflect.Interface:
		if rv.IsNil() {
			return "nil", nil
		}
		return s.serializeValue(rv.Elem().Interface())
	}

	if s.isBasicType(rt.Kind()) {
		return fmt.Sprintf("%v", v), nil
	}

	return s.jsonFallback(v)
}

// serializeSequence handles slices and arrays. Both render identically so
// equal elements derive equal keys regardless of the container kind.
func (s *defaultKeySerializer) serializeSequence(rv reflect.Value) (string, error) {
	length := rv.Len()
	parts := make([]string, length)

	for i := 0; i < length; i++ {
		serialized, err := s.serializeValue(rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		parts[i] = serialized
	}

	return fmt.Sprintf("seq[%d]:{%s}", length, strings.Join(parts, ",")), nil
}

// serializeMap handles map serialization with pairs sorted for determinism.
func (s *defaultKeySerializer) serializeMap(rv reflect.Value) (string, error) {
	keys := rv.MapKeys()
	pairs := make([]string, len(keys))

	for i, k := range keys {
		keyStr, err := s.serializeValue(k.Interface())
		if err != nil {
			return "", err
		}
		valueStr, err := s.serializeValue(rv.MapIndex(k).Interface())
		if err != nil {
			return "", err
		}
		pairs[i] = keyStr + "=" + valueStr
	}
	sort.Strings(pairs)

	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ",")), nil
}

// serializeStruct handles struct serialization with exported field names.
// The field count is part of the rendering, like seq and map counts.
func (s *defaultKeySerializer) serializeStruct(rv reflect.Value, rt reflect.Type) (string, error) {
	numFields := rv.NumField()
	parts := make([]string, 0, numFields)

	for i := 0; i < numFields; i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldValue := rv.Field(i)
		if !fieldValue.CanInterface() {
			continue
		}

		serialized, err := s.serializeValue(fieldValue.Interface())
		if err != nil {
			return "", err
		}
		parts = append(parts, field.Name+":"+serialized)
	}

	return fmt.Sprintf("struct[%d]:{%s}", len(parts), strings.Join(parts, ",")), nil
}

// isBasicType checks if a kind renders directly via %v. Strings are not
// listed; they go through quoting instead.
func (s *defaultKeySerializer) isBasicType(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// jsonFallback provides JSON serialization as a last resort. Unlike basic
// kinds, a JSON failure here means the value cannot participate in a cache
// key and the error surfaces to the caller.
func (s *defaultKeySerializer) jsonFallback(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return "json:" + string(data), nil
}

// hashedKeySerializer digests the canonical key into a fixed-size form.
type hashedKeySerializer struct {
	inner KeySerializer
}

// NewHashedKeySerializer wraps the default serializer so each derived key
// becomes the function identity plus a fixed-width xxhash digest of the
// canonical serialization. Use it when argument values are large or when
// the backing store prefers short keys. Two distinct argument combinations
// only collide on a 64-bit hash collision, which this cache accepts as
// negligible.
func NewHashedKeySerializer() KeySerializer {
	return &hashedKeySerializer{inner: NewDefaultKeySerializer()}
}

// SerializeKey derives the canonical key and collapses it to a digest.
func (s *hashedKeySerializer) SerializeKey(identity string, args []any, named map[string]any) (string, error) {
	key, err := s.inner.SerializeKey(identity, args, named)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%016x", identity, KeySeparator, xxhash.Sum64String(key)), nil
}
