// Package digest fingerprints list contents with siphash-2-4.
package digest

import (
	"encoding/binary"
	"fmt"
	"iter"
	"reflect"

	"github.com/dchest/siphash"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd

	nilKey = uint64(0)
)

// Key returns the siphash key of a single value. Strings, byte slices,
// integers and bools hash their raw bytes, nil values share one key, and
// everything else hashes its "%T:%v" rendering.
func Key(v any) uint64 {
	if isnil(v) {
		return nilKey
	}

	switch x := v.(type) {
	case string:
		return siphash.Hash(sipHashKey1, sipHashKey2, []byte(x))
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x)
	case bool:
		if x {
			return siphash.Hash(sipHashKey1, sipHashKey2, []byte{1})
		}
		return siphash.Hash(sipHashKey1, sipHashKey2, []byte{0})
	case int:
		return getUint64Hash(uint64(x))
	case int8:
		return getUint64Hash(uint64(x))
	case int16:
		return getUint64Hash(uint64(x))
	case int32:
		return getUint64Hash(uint64(x))
	case int64:
		return getUint64Hash(uint64(x))
	case uint:
		return getUint64Hash(uint64(x))
	case uint8:
		return getUint64Hash(uint64(x))
	case uint16:
		return getUint64Hash(uint64(x))
	case uint32:
		return getUint64Hash(uint64(x))
	case uint64:
		return getUint64Hash(x)
	case uintptr:
		return getUint64Hash(uint64(x))
	}

	return siphash.Hash(sipHashKey1, sipHashKey2, []byte(fmt.Sprintf("%T:%v", v, v)))
}

// Of returns an order sensitive fingerprint of seq. Two sequences with the
// same keys in the same order have the same fingerprint.
func Of[T any](seq iter.Seq[T]) uint64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)

	h := siphash.New(key[:])
	var buf [8]byte
	for v := range seq {
		binary.LittleEndian.PutUint64(buf[:], Key(v))
		_, _ = h.Write(buf[:]) // never fails
	}

	return h.Sum64()
}

func getUint64Hash(num uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], num)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}

func isnil(itf any) bool {
	if itf == nil {
		return true
	}

	switch rv := reflect.ValueOf(itf); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}

	return false
}
