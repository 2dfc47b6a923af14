package pure

import (
	"github.com/on-the-ground/lambda_ive_go/internal/memo"
)

// TableizeI1O1 memoizes a plain Go function into a bounded table keeping at
// most maxTableSize results, least recently used first out. The table takes
// no lock, so pureFn may call the tableized function recursively.
func TableizeI1O1[I1 memo.ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	table := tableFor[O1](pureFn != nil, maxTableSize)
	return func(i1 I1) O1 {
		return memoGet(table, func() O1 { return pureFn(i1) }, i1)
	}
}

func TableizeI2O1[I1, I2 memo.ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	table := tableFor[O1](pureFn != nil, maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return memoGet(table, func() O1 { return pureFn(i1, i2) }, i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 memo.ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	table := tableFor[O1](pureFn != nil, maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoGet(table, func() O1 { return pureFn(i1, i2, i3) }, i1, i2, i3)
	}
}

type dualOutput[O1, O2 any] struct {
	first  O1
	second O2
}

func TableizeI1O2[I1 memo.ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	table := tableFor[dualOutput[O1, O2]](pureFn != nil, maxTableSize)
	return func(i1 I1) (O1, O2) {
		out := memoGet(table, func() dualOutput[O1, O2] {
			o1, o2 := pureFn(i1)
			return dualOutput[O1, O2]{o1, o2}
		}, i1)
		return out.first, out.second
	}
}

func TableizeI2O2[I1, I2 memo.ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	table := tableFor[dualOutput[O1, O2]](pureFn != nil, maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		out := memoGet(table, func() dualOutput[O1, O2] {
			o1, o2 := pureFn(i1, i2)
			return dualOutput[O1, O2]{o1, o2}
		}, i1, i2)
		return out.first, out.second
	}
}

func TableizeI3O2[I1, I2, I3 memo.ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, O2) {
	table := tableFor[dualOutput[O1, O2]](pureFn != nil, maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		out := memoGet(table, func() dualOutput[O1, O2] {
			o1, o2 := pureFn(i1, i2, i3)
			return dualOutput[O1, O2]{o1, o2}
		}, i1, i2, i3)
		return out.first, out.second
	}
}

func tableFor[O any](hasFn bool, maxTableSize uint32) *memo.Table[O] {
	requireFunc(hasFn, "Tableize")
	if maxTableSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return memo.NewTable[O](memo.NewConfig(memo.Optimistic, 0, int(maxTableSize)))
}
