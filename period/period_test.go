package period

import (
	"errors"
	"sort"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr error
	}{
		{in: "2021-01", want: New(2021, time.January)},
		{in: "1999-12", want: New(1999, time.December)},
		{in: " 2021-07 ", want: New(2021, time.July)},
		{in: "2021-00", wantErr: ErrFormat},
		{in: "2021-13", wantErr: ErrFormat},
		{in: "2021-1", wantErr: ErrFormat},
		{in: "21-01", wantErr: ErrFormat},
		{in: "2021/01", wantErr: ErrFormat},
		{in: "2021-M01", wantErr: ErrFormat},
		{in: "abcd-01", wantErr: ErrFormat},
		{in: "", wantErr: ErrFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Parse(%q) err = %v, want %v", tc.in, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWireRoundTrip(t *testing.T) {
	// For all valid entry strings, re-rendering via Wire then parsing back
	// recovers the original (year, month).
	for y := 1990; y <= 2030; y += 7 {
		for m := time.January; m <= time.December; m++ {
			in := New(y, m)
			back, err := ParseWire(in.Wire())
			if err != nil {
				t.Fatalf("ParseWire(%q) unexpected error: %v", in.Wire(), err)
			}
			if back != in {
				t.Errorf("round-trip of %v through %q = %v", in, in.Wire(), back)
			}
		}
	}
}

func TestWireOrderIsChronological(t *testing.T) {
	tokens := []string{
		New(2021, time.January).Wire(),
		New(2020, time.September).Wire(),
		New(2020, time.November).Wire(),
	}
	sort.Strings(tokens)
	want := []string{"2020-M09", "2020-M11", "2021-M01"}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("sorted tokens = %v, want %v", tokens, want)
		}
	}
}

func TestLabel(t *testing.T) {
	testCases := []struct{ in, want string }{
		{"2025-M11", "2025-11"},
		{"2020-M01", "2020-01"},
		{"2020", "2020"},           // bare year passes through
		{"2020-MXX", "2020-MXX"},   // garbage passes through
		{"2020-M13", "2020-M13"},   // out of range passes through
	}
	for _, tc := range testCases {
		if got := Label(tc.in); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseYearLoose(t *testing.T) {
	testCases := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "2021", want: 2021},
		{in: "2021-05", want: 2021},
		{in: "2021-whatever", want: 2021},
		{in: "1800", want: 1800},
		{in: "3000", want: 3000},
		{in: "1799", wantErr: ErrYearRange},
		{in: "3001", wantErr: ErrYearRange},
		{in: "twenty", wantErr: ErrFormat},
		{in: "", wantErr: ErrFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseYearLoose(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseYearLoose(%q) err = %v, want %v", tc.in, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseYearLoose(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseYearLoose(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	today := New(2025, time.August)
	if got := Clamp(New(2030, time.January), today); got != today {
		t.Errorf("Clamp(future) = %v, want %v", got, today)
	}
	past := New(2020, time.March)
	if got := Clamp(past, today); got != past {
		t.Errorf("Clamp(past) = %v, want %v", got, past)
	}
	if got := Clamp(today, today); got != today {
		t.Errorf("Clamp(today) = %v, want %v", got, today)
	}
	if got := ClampYear(2099, 2025); got != 2025 {
		t.Errorf("ClampYear(2099, 2025) = %d, want 2025", got)
	}
	if got := ClampYear(2020, 2025); got != 2020 {
		t.Errorf("ClampYear(2020, 2025) = %d, want 2020", got)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2020, time.December)
	b := New(2021, time.January)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering broken between %v and %v", a, b)
	}
}
