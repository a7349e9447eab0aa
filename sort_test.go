// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbsort_test

import (
	"math/rand"
	"sort"
	"testing"
	"testing/quick"

	"code.hybscloud.com/bbsort"
)

func referenceSort(a []int) []int {
	out := append([]int(nil), a...)
	sort.Ints(out)
	return out
}

// TestSort_S1..S6 are the concrete end-to-end scenarios.

func TestSort_S1_ReversedWideMagnitudeFloats(t *testing.T) {
	data := []float64{3000, 2000, 1000, 300, 200, 100, 30, 20, 10, 3, 2, 1, 0.0003, 0.0002, 0.0001}
	want := []float64{0.0001, 0.0002, 0.0003, 1, 2, 3, 10, 20, 30, 100, 200, 300, 1000, 2000, 3000}

	bbsort.Sort(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("S1: index %d = %v, want %v (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestSort_S2_MixedSigns(t *testing.T) {
	data := []int{-5, -10, 0, -3, 8, 5, -1, 10}
	want := []int{-10, -5, -3, -1, 0, 5, 8, 10}

	bbsort.Sort(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("S2: index %d = %d, want %d (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestSort_S3_HugeOutlier(t *testing.T) {
	data := []int{9, 8, 7, 1, 1000000000}
	want := []int{1, 7, 8, 9, 1000000000}

	bbsort.Sort(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("S3: index %d = %d, want %d (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestSort_S4_FloatsWithHugeOutlier(t *testing.T) {
	data := []float64{0.9, 0.8, 0.7, 0.1, 1000000000}
	want := []float64{0.1, 0.7, 0.8, 0.9, 1000000000}

	bbsort.Sort(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("S4: index %d = %v, want %v (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestSort_S5_AlreadySortedWithRepeats(t *testing.T) {
	data := []int{10, 20, 40, 50, 60, 69, 70, 70, 70, 70, 70}
	want := append([]int(nil), data...)

	bbsort.Sort(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("S5: index %d = %d, want %d (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestTopK_S6(t *testing.T) {
	data := []int{5, 2, 9, 1, 7, 3}
	want := []int{1, 2, 3}

	got := bbsort.TopK(data, 3)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("S6: index %d = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

// Boundary cases.

func TestSort_EmptyInput(t *testing.T) {
	var data []int
	bbsort.Sort(data)
	if len(data) != 0 {
		t.Errorf("Sort(nil) produced length %d, want 0", len(data))
	}
}

func TestSort_SingleElementUnchanged(t *testing.T) {
	data := []int{42}
	bbsort.Sort(data)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

func TestSort_AllEqual(t *testing.T) {
	data := make([]int, 20)
	for i := range data {
		data[i] = 7
	}
	bbsort.Sort(data)
	for i, v := range data {
		if v != 7 {
			t.Fatalf("index %d = %d, want 7", i, v)
		}
	}
}

func TestSort_PairReverseOrder(t *testing.T) {
	data := []int{2, 1}
	bbsort.Sort(data)
	if data[0] != 1 || data[1] != 2 {
		t.Errorf("Sort([2,1]) = %v, want [1,2]", data)
	}
}

func TestSort_ContainingZero(t *testing.T) {
	data := []int{0, -1, 1, 0, -5, 5}
	bbsort.Sort(data)
	want := []int{-5, -1, 0, 0, 1, 5}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("index %d = %d, want %d (full: %v)", i, data[i], want[i], data)
		}
	}
}

// TestSort_MagnitudeStraddlingLogBoundary is a regression test for a
// correctness bug where getLog's linear and logarithmic branches met
// discontinuously at magnitude 2: values straddling that seam (e.g. 1.9 and
// 2.0) could land in bucket indices out of order, so ascending output order
// was violated for otherwise unremarkable floating-point input.
func TestSort_MagnitudeStraddlingLogBoundary(t *testing.T) {
	data := []float64{1.0, 1.9, 2.0, 2.1, 2.5, 3.0, 4.0, 5.0, 10.0}
	want := []float64{1.0, 1.9, 2.0, 2.1, 2.5, 3.0, 4.0, 5.0, 10.0}

	bbsort.Sort(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("index %d = %v, want %v (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestTopK_ZeroK(t *testing.T) {
	got := bbsort.TopK([]int{3, 1, 2}, 0)
	if len(got) != 0 {
		t.Errorf("TopK(_, 0) = %v, want empty", got)
	}
}

func TestTopK_KLargerThanInput(t *testing.T) {
	data := []int{3, 1, 2}
	got := bbsort.TopK(data, 100)
	if len(got) != len(data) {
		t.Fatalf("TopK(_, 100) length = %d, want %d", len(got), len(data))
	}
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

// Property-based tests (spec.md §8, universal properties 1-8).

func TestProperty_CorrectnessAndMultisetEquality(t *testing.T) {
	f := func(a []int16) bool {
		data := make([]int, len(a))
		for i, v := range a {
			data[i] = int(v)
		}

		got := append([]int(nil), data...)
		bbsort.Sort(got)

		if len(got) != len(data) {
			return false
		}
		for i := 1; i < len(got); i++ {
			if got[i-1] > got[i] {
				return false
			}
		}

		wantCounts := make(map[int]int)
		gotCounts := make(map[int]int)
		for _, v := range data {
			wantCounts[v]++
		}
		for _, v := range got {
			gotCounts[v]++
		}
		if len(wantCounts) != len(gotCounts) {
			return false
		}
		for k, v := range wantCounts {
			if gotCounts[k] != v {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestProperty_Idempotence(t *testing.T) {
	f := func(a []int32) bool {
		data := make([]int, len(a))
		for i, v := range a {
			data[i] = int(v)
		}

		once := append([]int(nil), data...)
		bbsort.Sort(once)
		twice := append([]int(nil), once...)
		bbsort.Sort(twice)

		for i := range once {
			if once[i] != twice[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

func TestProperty_TopKConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(50)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(1000) - 500
		}
		k := rng.Intn(n + 5)

		sorted := append([]int(nil), data...)
		bbsort.Sort(sorted)
		want := sorted[:min(k, n)]

		got := bbsort.TopK(data, k)
		if len(got) != len(want) {
			t.Fatalf("TopK length = %d, want %d (n=%d k=%d)", len(got), len(want), n, k)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("TopK mismatch at %d: got %d, want %d (n=%d k=%d)", i, got[i], want[i], n, k)
			}
		}
	}
}

func TestProperty_TopKMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(40) + 1
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(500)
		}

		k1 := rng.Intn(n)
		k2 := k1 + rng.Intn(n-k1+1)

		top1 := bbsort.TopK(data, k1)
		top2 := bbsort.TopK(data, k2)

		if len(top1) > len(top2) {
			t.Fatalf("top_k(k1=%d) longer than top_k(k2=%d)", k1, k2)
		}
		for i := range top1 {
			if top1[i] != top2[i] {
				t.Fatalf("top_k(k1) not a prefix of top_k(k2) at %d: %d vs %d", i, top1[i], top2[i])
			}
		}
	}
}

func TestProperty_ReverseInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(60)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(2000) - 1000
		}

		reversed := make([]int, n)
		for i, v := range data {
			reversed[n-1-i] = v
		}

		a := append([]int(nil), data...)
		b := append([]int(nil), reversed...)
		bbsort.Sort(a)
		bbsort.Sort(b)

		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("reverse invariance violated at %d: %d vs %d", i, a[i], b[i])
			}
		}
	}
}

func TestProperty_RangeIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40)
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.Float64()*2000 - 1000
		}

		scale := 1 + rng.Float64()*10
		scaled := make([]float64, n)
		for i, v := range data {
			scaled[i] = v * scale
		}

		a := append([]float64(nil), data...)
		b := append([]float64(nil), scaled...)
		bbsort.Sort(a)
		bbsort.Sort(b)

		for i := range a {
			if (a[i]*scale-b[i] > 1e-6) || (b[i]-a[i]*scale > 1e-6) {
				t.Fatalf("range independence violated at %d: %v*scale != %v", i, a[i], b[i])
			}
		}
	}
}

// Stress scenarios (spec.md §8): random permutations at increasing N against
// a reference sort.

func TestStress_RandomPermutationsAgainstReferenceSort(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress sizes in short mode")
	}

	rng := rand.New(rand.NewSource(2026))
	for _, n := range []int{100, 10_000, 100_000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(200_000) - 100_000
		}
		rng.Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })

		want := referenceSort(data)
		got := append([]int(nil), data...)
		bbsort.Sort(got)

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d: mismatch at index %d: got %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}

func TestStress_RandomPermutationsWithDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, n := range []int{100, 5_000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(50) // heavy duplication
		}

		want := referenceSort(data)
		got := append([]int(nil), data...)
		bbsort.Sort(got)

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d (duplicates): mismatch at index %d: got %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}
