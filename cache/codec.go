package cache

import "github.com/vmihailenco/msgpack/v5"

// EncodeValue serializes a computed result for storage. A value msgpack
// cannot encode surfaces as a *SerializationError and nothing is stored.
func EncodeValue[T any](v T) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Argument: "result", Err: err}
	}
	return data, nil
}

// DecodeValue deserializes a stored value. Decoding fails when the stored
// bytes are incompatible with T, for example after the wrapped function's
// return type changed between runs.
func DecodeValue[T any](data []byte) (T, error) {
	var v T
	if err := msgpack.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &SerializationError{Argument: "result", Err: err}
	}
	return v, nil
}
