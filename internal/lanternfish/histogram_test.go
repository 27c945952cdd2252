package lanternfish

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewHistogram(t *testing.T) {
	h, err := NewHistogram([]int{3, 4, 3, 1, 2})
	if err != nil {
		t.Fatalf("NewHistogram returned error: %v", err)
	}
	want := Histogram{0, 1, 1, 2, 1, 0, 0, 0, 0}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("histogram mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHistogramRejectsOutOfRange(t *testing.T) {
	for _, timers := range [][]int{{1, 9}, {-1}, {0, 2, 100}} {
		_, err := NewHistogram(timers)
		if !errors.Is(err, ErrInvalidTimer) {
			t.Errorf("NewHistogram(%v) error = %v, want ErrInvalidTimer", timers, err)
		}
	}
}

func TestTickRotatesAndSpawns(t *testing.T) {
	h := Histogram{2, 1, 0, 0, 0, 0, 0, 3, 4}
	if err := h.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	// phase 7 moves to 6 and receives the two spawners, which also reappear at 8
	want := Histogram{1, 0, 0, 0, 0, 0, 5, 4, 2}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("after tick (-want +got):\n%s", diff)
	}
}

func TestNewbornReachesSpawnPhase(t *testing.T) {
	h := Histogram{}
	h[NewbornPhase] = 1

	for i := 0; i < 8; i++ {
		if err := h.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	want := Histogram{1, 0, 0, 0, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Fatalf("after 8 ticks (-want +got):\n%s", diff)
	}

	if err := h.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	want = Histogram{0, 0, 0, 0, 0, 0, 1, 0, 1}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("after 9 ticks (-want +got):\n%s", diff)
	}
}

func TestTickOverflowLeavesHistogramUntouched(t *testing.T) {
	h := Histogram{math.MaxUint64, 0, 0, 0, 0, 0, 0, 1, 0}
	before := h
	if err := h.Tick(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Tick error = %v, want ErrOverflow", err)
	}
	if diff := cmp.Diff(before, h); diff != "" {
		t.Errorf("histogram changed on overflow (-want +got):\n%s", diff)
	}
}

func TestTotalOverflow(t *testing.T) {
	h := Histogram{math.MaxUint64, 1}
	if _, err := h.Total(); !errors.Is(err, ErrOverflow) {
		t.Errorf("Total error = %v, want ErrOverflow", err)
	}
}

func TestAdvanceNegative(t *testing.T) {
	var h Histogram
	if err := h.Advance(-1); !errors.Is(err, ErrNegativeTicks) {
		t.Errorf("Advance(-1) error = %v, want ErrNegativeTicks", err)
	}
}

func TestHistogramString(t *testing.T) {
	h := Histogram{0, 1, 1, 2, 1}
	want := "[0:0 1:1 2:1 3:2 4:1 5:0 6:0 7:0 8:0]"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
