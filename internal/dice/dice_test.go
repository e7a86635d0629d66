package dice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededIsReproducible(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40, ^uint64(0)} {
		a := NewSeeded(seed)
		b := NewSeeded(seed)
		for i := 0; i < 200; i++ {
			require.Equal(t, RollD6(a), RollD6(b), "seed %d d6 #%d", seed, i)
			require.Equal(t, Roll2d6(a), Roll2d6(b), "seed %d 2d6 #%d", seed, i)
		}
		assert.Equal(t, seed, a.Seed())
	}
}

func TestSeededAcrossGoroutines(t *testing.T) {
	const n = 100
	want := make([]Roll, n)
	ref := NewSeeded(7)
	for i := range want {
		want[i] = Roll2d6(ref)
	}

	var wg sync.WaitGroup
	got := make([][]Roll, 4)
	for g := range got {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			r := NewSeeded(7)
			for i := 0; i < n; i++ {
				got[g] = append(got[g], Roll2d6(r))
			}
		}(g)
	}
	wg.Wait()
	for g := range got {
		assert.Equal(t, want, got[g])
	}
}

func TestFacesInRange(t *testing.T) {
	r := NewSeeded(99)
	for i := 0; i < 5000; i++ {
		f := RollD6(r)
		require.GreaterOrEqual(t, f, 1)
		require.LessOrEqual(t, f, 6)
	}
}

func TestUniformDistribution(t *testing.T) {
	const n = 36000
	var counts [13]int
	for i := 0; i < n; i++ {
		counts[Roll2d6(nil).Total]++
	}
	tests := []struct {
		total int
		want  float64
	}{
		{2, 1.0 / 36}, {7, 6.0 / 36}, {12, 1.0 / 36}, {6, 5.0 / 36}, {9, 4.0 / 36},
	}
	for _, tt := range tests {
		got := float64(counts[tt.total]) / n
		assert.InDelta(t, tt.want, got, 0.01, "P(total=%d)", tt.total)
	}
	assert.Zero(t, counts[0]+counts[1])
}

func TestNewRollFlags(t *testing.T) {
	tests := []struct {
		a, b      int
		total     int
		snake, bx bool
	}{
		{1, 1, 2, true, false},
		{6, 6, 12, false, true},
		{3, 4, 7, false, false},
		{0, 9, 7, false, false},
	}
	for _, tt := range tests {
		r := NewRoll(tt.a, tt.b)
		assert.Equal(t, tt.total, r.Total, "%d+%d", tt.a, tt.b)
		assert.Equal(t, tt.snake, r.SnakeEyes)
		assert.Equal(t, tt.bx, r.Boxcars)
	}
	assert.Equal(t, "3+4=7", NewRoll(3, 4).String())
}

func TestSequenceWrapsAndClamps(t *testing.T) {
	s := Sequence(2, 9, -1)
	assert.Equal(t, []int{2, 6, 1, 2}, []int{s.D6(), s.D6(), s.D6(), s.D6()})
	assert.Equal(t, 4, s.Consumed())

	empty := Sequence()
	assert.Equal(t, 1, empty.D6())
}

func TestSequenceOrder(t *testing.T) {
	r := Roll2d6(Sequence(5, 3))
	assert.Equal(t, [2]int{5, 3}, r.Dice)
}

func TestFuncRoller(t *testing.T) {
	calls := 0
	f := Func(func() int {
		calls++
		return calls * 4
	})
	assert.Equal(t, 4, RollD6(f))
	assert.Equal(t, 6, RollD6(f))
}

func TestRecorder(t *testing.T) {
	rec := Record(NewSeeded(3))
	first := Roll2d6(rec)
	second := Roll2d6(rec)

	faces := rec.Faces()
	require.Len(t, faces, 4)
	replayed := Sequence(faces...)
	assert.Equal(t, first, Roll2d6(replayed))
	assert.Equal(t, second, Roll2d6(replayed))
}

func TestProbabilityAtLeast(t *testing.T) {
	assert.Equal(t, 1.0, ProbabilityAtLeast(0))
	assert.Equal(t, 1.0, ProbabilityAtLeast(2))
	assert.InDelta(t, 21.0/36, ProbabilityAtLeast(7), 1e-9)
	assert.InDelta(t, 1.0/36, ProbabilityAtLeast(12), 1e-9)
	assert.Equal(t, 0.0, ProbabilityAtLeast(13))
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
