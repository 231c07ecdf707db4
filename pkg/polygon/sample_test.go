package polygon

import (
	"testing"

	"github.com/matzehuels/polyclip/pkg/errors"
)

func TestSampleExtraCountEmptyPool(t *testing.T) {
	src := script()
	got, err := sampleExtraCount(src, 5, 0)
	if err != nil {
		t.Fatalf("sampleExtraCount error: %v", err)
	}
	if got != 0 {
		t.Errorf("sampleExtraCount(5, 0) = %d, want 0", got)
	}
}

func TestSampleExtraCountTrials(t *testing.T) {
	// Two of four draws fall below the mean.
	src := script(0, 3, 1, 2)
	got, err := sampleExtraCount(src, 2, 4)
	if err != nil {
		t.Fatalf("sampleExtraCount error: %v", err)
	}
	if got != 2 {
		t.Errorf("sampleExtraCount = %d, want 2", got)
	}
	if !src.consumed() {
		t.Error("expected exactly maximum draws")
	}
}

func TestSampleExtraCountBounds(t *testing.T) {
	src := NewSource(1)
	for _, mean := range []int{0, 1, 5, 76, 200} {
		for range 200 {
			got, err := sampleExtraCount(src, mean, 76)
			if err != nil {
				t.Fatalf("sampleExtraCount error: %v", err)
			}
			if got < 0 || got > 76 {
				t.Fatalf("sampleExtraCount(%d, 76) = %d, out of [0, 76]", mean, got)
			}
			if mean == 0 && got != 0 {
				t.Fatalf("sampleExtraCount(0, 76) = %d, want 0", got)
			}
			if mean >= 76 && got != 76 {
				t.Fatalf("sampleExtraCount(%d, 76) = %d, want 76", mean, got)
			}
		}
	}
}

func TestSampleExtraCountMean(t *testing.T) {
	src := NewSource(42)
	const trials = 4000
	sum := 0
	for range trials {
		got, err := sampleExtraCount(src, 5, 76)
		if err != nil {
			t.Fatalf("sampleExtraCount error: %v", err)
		}
		sum += got
	}
	avg := float64(sum) / trials
	if avg < 4.7 || avg > 5.3 {
		t.Errorf("average extra count = %.3f, want close to 5", avg)
	}
}

func TestSampleExtraCountSourceError(t *testing.T) {
	_, err := sampleExtraCount(script(1), 2, 4)
	if !errors.Is(err, errors.ErrCodeRandomSource) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeRandomSource)
	}
}
