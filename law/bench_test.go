// SPDX-License-Identifier: MIT

package law_test

import (
	"testing"

	"github.com/katalvlaran/genlaw/law"
)

var (
	sinkInt  int
	sinkByte byte
)

func BenchmarkModInverse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		inv, _ := law.ModInverse(i|1, 1<<20)
		sinkInt = inv
	}
}

func BenchmarkPairsMod256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkByte = law.PairsMod256(i)
	}
}

func BenchmarkEncodedSize(b *testing.B) {
	l := nestedLaw()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInt = law.EncodedSize(l)
	}
}
