package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/lambda_ive_go/pure"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	var tableFib func(int) int
	tableFib = pure.TableizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	}, 32)

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

func levenshtein(lev func(string, string) int) func(string, string) int {
	return func(a, b string) int {
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return lev(a[1:], b[1:])
		}
		return 1 + min(
			lev(a[1:], b),
			lev(a, b[1:]),
			lev(a[1:], b[1:]),
		)
	}
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	var lev func(string, string) int
	lev = levenshtein(func(x, y string) int { return lev(x, y) })
	for i := 0; i < b.N; i++ {
		_ = lev("kitten", "sitting")
	}
}

func BenchmarkTableizedLevenshtein(b *testing.B) {
	for _, size := range []uint32{2, 8, 32} {
		b.Run(fmt.Sprintf("TableSize_%d", size), func(b *testing.B) {
			var lev func(string, string) int
			lev = pure.TableizeI2O1(levenshtein(func(x, y string) int {
				return lev(x, y)
			}), size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}

type point struct {
	X, Y float64
}

func BenchmarkMemoizedDistParallel(b *testing.B) {
	lockings := []pure.Locking{pure.Coarse, pure.Striped, pure.Coalesced, pure.Optimistic}
	for _, locking := range lockings {
		b.Run(locking.String(), func(b *testing.B) {
			dist := pure.F2(func(p1, p2 point) float64 {
				dx := p1.X - p2.X
				dy := p1.Y - p2.Y
				return dx*dx + dy*dy
			}).MemoizedWith(pure.NewMemoConfig(locking, 0, 0))

			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					_ = dist.Apply(point{float64(i % 64), 0}, point{0, 1})
					i++
				}
			})
		})
	}
}
