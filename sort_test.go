package squeue

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	var tests = []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"single", []string{"a"}, []string{"a"}},
		{"three", []string{"c", "a", "b"}, []string{"a", "b", "c"}},
		{"duplicates", []string{"b", "a", "b", "a"}, []string{"a", "a", "b", "b"}},
		{"numbers as text", []string{"10", "9", "100", "1"}, []string{"1", "10", "100", "9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q = newQueue(t, tt.in...)
			q.Sort()
			assertValues(t, q, tt.want...)
			assert.True(t, q.Sorted())
		})
	}
}

func TestSort_Idempotent(t *testing.T) {
	var q = newQueue(t, "d", "b", "b", "a", "c")
	q.Sort()
	var before []*Element
	for e := q.Front(); e != nil; e = e.Next() {
		before = append(before, e)
	}

	q.Sort()
	var i = 0
	for e := q.Front(); e != nil; e = e.Next() {
		assert.Same(t, before[i], e)
		i++
	}
	assertValues(t, q, "a", "b", "b", "c", "d")
}

func TestSort_Random(t *testing.T) {
	var r = rand.New(rand.NewSource(11))
	var in = make([]string, 1000)
	for i := range in {
		in[i] = strconv.Itoa(r.Intn(300))
	}
	var q = newQueue(t, in...)
	q.Sort()

	var want = slices.Clone(in)
	slices.Sort(want)
	assertValues(t, q, want...)
}

func TestSort_Comparer(t *testing.T) {
	var q = New(WithCheck(true), WithComparer(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}))
	require.NotNil(t, q)
	defer q.Free()
	for _, v := range []string{"b", "A", "a", "B"} {
		require.NoError(t, q.InsertTail(v))
	}

	q.Sort()
	assertValues(t, q, "A", "a", "b", "B")

	require.NoError(t, q.DeleteDup())
	assertValues(t, q)
}

func TestSorted(t *testing.T) {
	assert.True(t, newQueue(t).Sorted())
	assert.True(t, newQueue(t, "a", "a", "b").Sorted())
	assert.False(t, newQueue(t, "b", "a").Sorted())
}

func BenchmarkQueue_Sort(b *testing.B) {
	var r = rand.New(rand.NewSource(1))
	var in = make([]string, 10000)
	for i := range in {
		in[i] = strconv.Itoa(r.Int())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		var q = New()
		for _, v := range in {
			require.NoError(b, q.InsertTail(v))
		}
		b.StartTimer()
		q.Sort()
		b.StopTimer()
		q.Free()
		b.StartTimer()
	}
}

func BenchmarkQueue_InsertTail(b *testing.B) {
	var q = New()
	defer q.Free()
	for i := 0; i < b.N; i++ {
		_ = q.InsertTail("hello")
	}
}
