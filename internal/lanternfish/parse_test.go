package lanternfish

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTimers(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []int
	}{
		{"canonical", "3,4,3,1,2", []int{3, 4, 3, 1, 2}},
		{"trailing newline", "3,4,3,1,2\n", []int{3, 4, 3, 1, 2}},
		{"spaces around tokens", " 1 , 2,\t3 ", []int{1, 2, 3}},
		{"upper phases", "7,8,0", []int{7, 8, 0}},
		{"empty", "", []int{}},
		{"blank", "  \n", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimers(tt.line)
			if err != nil {
				t.Fatalf("ParseTimers(%q) returned error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTimers(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseTimersErrors(t *testing.T) {
	tests := []struct {
		line     string
		token    string
		position int
		sentinel error
	}{
		{"3,x,1", "x", 2, strconv.ErrSyntax},
		{"3,-1", "-1", 2, ErrInvalidTimer},
		{"9", "9", 1, ErrInvalidTimer},
		{"1,,2", "", 2, strconv.ErrSyntax},
		{"1,2,", "", 3, strconv.ErrSyntax},
		{"1.5", "1.5", 1, strconv.ErrSyntax},
	}
	for _, tt := range tests {
		_, err := ParseTimers(tt.line)
		var terr *TimerError
		if !errors.As(err, &terr) {
			t.Fatalf("ParseTimers(%q) error = %v, want *TimerError", tt.line, err)
		}
		if terr.Token != tt.token || terr.Position != tt.position {
			t.Errorf("ParseTimers(%q) reported token %q at %d, want %q at %d",
				tt.line, terr.Token, terr.Position, tt.token, tt.position)
		}
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("ParseTimers(%q) error = %v, want %v", tt.line, err, tt.sentinel)
		}
	}
}
