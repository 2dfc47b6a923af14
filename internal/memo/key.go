package memo

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ComparableOrStringer is an argument usable as a table key: either a
// hashable value or a fmt.Stringer.
type ComparableOrStringer = any

// ComparableOrString is what a table actually stores keys as.
type ComparableOrString = any

// MaxArity is the longest key path a table accepts.
const MaxArity = 3

// Unit is the single key of zero-argument computations.
type Unit struct{}

// renderedKey stands in for a non-hashable fmt.Stringer. Two such arguments
// are the same key when they have the same dynamic type and render the same.
type renderedKey struct {
	typ  reflect.Type
	text string
}

// tableKey keys hashable values by themselves, so equal arguments and only
// equal arguments share an entry. Other values panic unless they are
// fmt.Stringers.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if i == nil {
		return nil
	}
	typ := reflect.TypeOf(i)
	if typ.Comparable() {
		return i
	}
	if stringer, ok := i.(fmt.Stringer); ok {
		return renderedKey{typ: typ, text: stringer.String()}
	}
	panic(fmt.Sprintf("memo: unhashable key type %v", typ))
}

// Keys converts call arguments into a key path.
func Keys(args []ComparableOrStringer) []ComparableOrString {
	switch len(args) {
	case 0:
		return []ComparableOrString{Unit{}}
	case 1, 2, 3:
	default:
		panic(fmt.Sprintf("memo: %d arguments exceed max arity %d", len(args), MaxArity))
	}
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

// flatKey renders a key path as a string that differs for every distinct
// path of hashable values. Type names are included so equal renderings of
// different dynamic types stay apart. Pointers render as their address,
// since pointer keys are equal only when they are the same pointer.
func flatKey(keys []ComparableOrString) string {
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(0)
		}
		switch rk := k.(type) {
		case renderedKey:
			fmt.Fprintf(&sb, "%v=%q", rk.typ, rk.text)
		default:
			if k != nil && reflect.TypeOf(k).Kind() == reflect.Pointer {
				fmt.Fprintf(&sb, "%T=%p", k, k)
			} else {
				fmt.Fprintf(&sb, "%T=%#v", k, k)
			}
		}
	}
	return sb.String()
}

func partitionOf(flat string, numPartitions int) int {
	switch numPartitions {
	case 0:
		panic("number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(flat) % uint64(numPartitions))
	}
}
