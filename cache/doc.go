// Package cache provides the contracts and key derivation for persistent
// function memoization.
//
// # Overview
//
// This package exports the building blocks the funccache decorator is
// assembled from:
//
//   - KeySerializer: builds stable cache keys from a function identity and
//     its call arguments
//   - Store: the persistent key-value collaborator backing one wrapped
//     function
//   - Entry: a stored value plus its absolute expiration timestamp
//   - GetOrCompute: the lookup-or-compute-and-store cycle
//
// The pieces are exported so callers can swap in their own serializers or
// store backends while reusing the orchestration.
//
// # Basic Usage
//
// The simplest way to use the package directly is with the default key
// serializer and a store from internal backends wired through funccache:
//
//	serializer := cache.NewDefaultKeySerializer()
//	key, err := serializer.SerializeKey("feeds.FetchDocument", []any{url}, nil)
//	if err != nil {
//		return err
//	}
//	doc, err := cache.GetOrCompute(ctx, store, key, cache.Hour, func(ctx context.Context) (Document, error) {
//		return fetchDocument(ctx, url)
//	})
//
// # Key Serialization Strategy
//
// The default key serializer uses reflection to render argument values
// deterministically:
//
//   - Numbers and bools: direct string representation
//   - Strings: quoted, so delimiters inside a value never read as element
//     or segment boundaries
//   - Slices and arrays: recursive serialization with an element count;
//     equal elements derive equal keys regardless of container kind
//   - Maps: counted, sorted key=value pairs for deterministic output
//   - Structs: counted exported fields as name:value pairs
//   - Pointers: dereferenced; nil renders as "nil"
//   - Complex types: JSON fallback (self-delimiting, so it cannot blur
//     element boundaries either)
//
// Positional arguments render inside a single count-prefixed segment and
// named arguments as a trailing sorted one, so {b:2, a:1} and {a:1, b:2}
// derive the same key while positional order stays significant. Counting
// and quoting together make the rendering uniquely decodable: distinct
// argument lists always derive distinct keys, even when values contain
// the separator, commas, or braces.
//
// Structural rendering means two values of different Go types that render
// the same way ([]int{1,2} and [2]int{1,2}) share a cache entry. Keys
// follow value equality, not type identity; wrap values in distinct struct
// types when that distinction matters.
//
// # Serialization Failures
//
// Funcs, channels and unsafe pointers have no serialization that survives a
// process restart, so deriving a key from one fails with a
// *SerializationError naming the offending positional index or argument
// name. The cache is left untouched and the wrapped function is not
// executed for that call.
//
// # Hashed Keys
//
// NewHashedKeySerializer collapses the canonical serialization into a
// fixed-width xxhash digest prefixed with the function identity. Keys stay
// short no matter how large the arguments are, at the cost of a negligible
// 64-bit collision probability.
//
// # Expiration
//
// Expiry is checked lazily on read. Store implementations return expired
// entries as-is and GetOrCompute decides staleness by comparing ExpiresAt
// against the clock; a stale entry is only removed by being overwritten.
// There is no background sweep, so a store grows with the variety of
// distinct argument combinations it has seen.
//
// # See Also
//
// For wrapping functions and per-function store management, see the
// funccache package. For dependency injection setup, see pkg/di.
package cache
