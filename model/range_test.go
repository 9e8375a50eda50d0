package model

import (
	"errors"
	"math"
	"testing"
)

func TestNewRange(t *testing.T) {
	tcs := []struct {
		name  string
		start uint64
		size  uint64
		err   error
	}{
		{name: "Valid", start: 2, size: 3},
		{name: "SingleValue", start: 0, size: 1},
		{name: "UpToMax", start: math.MaxUint64 - 3, size: 3},
		{name: "Empty", start: 5, size: 0, err: ErrInvalidRange},
		{name: "Overflow", start: math.MaxUint64 - 1, size: 2, err: ErrOverflow},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRange(tc.start, tc.size)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Got error %v, want %v", err, tc.err)
			}
			if tc.err != nil {
				return
			}
			if r.Start() != tc.start || r.Size() != tc.size {
				t.Errorf("Got %v, want start %d size %d", r, tc.start, tc.size)
			}
		})
	}
}

func TestMustNewRange_Panics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Got panic %v, want %v", err, ErrInvalidRange)
		}
	}()
	MustNewRange(1, 0)
}

func TestRange_Contains(t *testing.T) {
	r := MustNewRange(2, 3)
	for v, want := range map[uint64]bool{0: false, 1: false, 2: true, 3: true, 4: true, 5: false} {
		if got := r.Contains(v); got != want {
			t.Errorf("Contains(%d): got %v, want %v", v, got, want)
		}
	}
	if got := r.End(); got != 4 {
		t.Errorf("Got end %d, want 4", got)
	}
}

func TestRange_Overlaps(t *testing.T) {
	r := MustNewRange(2, 3)
	tcs := []struct {
		name  string
		other Range
		want  bool
	}{
		{name: "Below", other: MustNewRange(0, 2), want: false},
		{name: "Above", other: MustNewRange(5, 2), want: false},
		{name: "TouchingStart", other: MustNewRange(1, 2), want: true},
		{name: "TouchingEnd", other: MustNewRange(4, 2), want: true},
		{name: "Surrounding", other: MustNewRange(1, 5), want: true},
		{name: "SameStart", other: MustNewRange(2, 4), want: true},
		{name: "Inside", other: MustNewRange(3, 1), want: true},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Overlaps(tc.other); got != tc.want {
				t.Errorf("Got %v, want %v", got, tc.want)
			}
			if got := tc.other.Overlaps(r); got != tc.want {
				t.Errorf("Got %v for reversed operands, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Offset(t *testing.T) {
	r := MustNewRange(10, 5)
	if got, ok := r.Offset(12); !ok || got != 2 {
		t.Errorf("Got (%d, %v), want (2, true)", got, ok)
	}
	if _, ok := r.Offset(15); ok {
		t.Errorf("Got an offset for 15, want none")
	}
	if _, ok := r.Offset(9); ok {
		t.Errorf("Got an offset for 9, want none")
	}
}

func TestRange_String(t *testing.T) {
	if got := MustNewRange(79, 14).String(); got != "[79, 92]" {
		t.Errorf("Got %q, want %q", got, "[79, 92]")
	}
}
