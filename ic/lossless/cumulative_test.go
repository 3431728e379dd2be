package lossless

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/cocosip/go-interp-codec/ic/common"
)

func TestCumulateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 50; trial++ {
		n := make([]uint64, 1+rng.Intn(2000))
		var sum uint64
		for i := range n {
			n[i] = uint64(rng.Intn(511))
			sum += n[i]
		}

		c, err := Cumulate(n)
		if err != nil {
			t.Fatalf("Cumulate failed: %v", err)
		}
		if c[0] != n[0] {
			t.Fatalf("C[0] = %d, want %d", c[0], n[0])
		}
		if c[len(c)-1] != sum {
			t.Fatalf("C[last] = %d, want sum %d", c[len(c)-1], sum)
		}
		for i := 1; i < len(c); i++ {
			if c[i] < c[i-1] {
				t.Fatalf("C decreases at %d: %d < %d", i, c[i], c[i-1])
			}
		}

		back, err := Difference(c)
		if err != nil {
			t.Fatalf("Difference failed: %v", err)
		}
		if !slices.Equal(back, n) {
			t.Fatal("Difference(Cumulate(N)) != N")
		}
	}
}

func TestCumulateKnown(t *testing.T) {
	c, err := Cumulate([]uint64{0, 2, 4, 2})
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint64{0, 2, 6, 8}; !slices.Equal(c, want) {
		t.Errorf("Cumulate = %v, want %v", c, want)
	}

	empty, err := Cumulate(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("Cumulate(nil) = %v, %v", empty, err)
	}
}

func TestCumulateOverflow(t *testing.T) {
	_, err := Cumulate([]uint64{math.MaxUint64 - 1, 1, 1})
	if !errors.Is(err, common.ErrCumulativeOverflow) || !errors.Is(err, common.ErrRange) {
		t.Errorf("error = %v, want ErrCumulativeOverflow", err)
	}
}

func TestDifferenceRejectsDecrease(t *testing.T) {
	_, err := Difference([]uint64{0, 5, 4})
	if !errors.Is(err, common.ErrCorruptSequence) {
		t.Errorf("error = %v, want ErrCorruptSequence", err)
	}
}
