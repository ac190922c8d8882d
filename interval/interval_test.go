package interval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func iv(start, end Time, v float64) Interval[float64] {
	return Interval[float64]{StartTime: start, EndTime: end, Value: v}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"00:00", false},
		{"08:35", false},
		{"23:59", false},
		{"24:00", false},
		{"24:01", true},
		{"8:35", true},
		{"08-35", true},
		{"08:60", true},
		{"ab:cd", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTime) {
				t.Errorf("expected ErrInvalidTime, got %v", err)
			}
		})
	}
}

func TestTimeMinutes(t *testing.T) {
	if got := Time("08:35").Minutes(); got != 515 {
		t.Errorf("expected 515, got %d", got)
	}
	if got := DayEnd.Minutes(); got != 1440 {
		t.Errorf("expected 1440, got %d", got)
	}
	if got := Time("bad").Minutes(); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestPadGaps_FullDayUnchanged(t *testing.T) {
	in := []Interval[float64]{iv("00:00", "24:00", 3)}
	got, err := PadGaps(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("PadGaps mismatch (-want +got):\n%s", diff)
	}
}

func TestPadGaps_Empty(t *testing.T) {
	got, err := PadGaps[float64](nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Interval[float64]{iv("00:00", "24:00", 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PadGaps mismatch (-want +got):\n%s", diff)
	}
}

func TestPadGaps_FillsGaps(t *testing.T) {
	in := []Interval[float64]{
		iv("07:30", "08:00", 1),
		iv("08:00", "08:30", 2),
		iv("09:00", "09:30", 1.5),
	}
	got, err := PadGaps(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Interval[float64]{
		iv("00:00", "07:30", 0),
		iv("07:30", "08:00", 1),
		iv("08:00", "08:30", 2),
		iv("08:30", "09:00", 0),
		iv("09:00", "09:30", 1.5),
		iv("09:30", "24:00", 0),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PadGaps mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].EndTime != got[i].StartTime {
			t.Errorf("gap between %d and %d: %s != %s", i-1, i, got[i-1].EndTime, got[i].StartTime)
		}
	}
	if Duration(got) != DayEnd.Minutes() {
		t.Errorf("expected full day coverage, got %d minutes", Duration(got))
	}
	if len(in) != 3 || in[0].StartTime != "07:30" {
		t.Error("input should not be modified")
	}
}

func TestPadGaps_Overlap(t *testing.T) {
	in := []Interval[float64]{
		iv("00:00", "12:00", 2),
		iv("10:00", "12:00", 2),
	}
	_, err := PadGaps(in)
	if err == nil {
		t.Fatal("expected overlap error")
	}
	if !errors.Is(err, ErrOverlap) {
		t.Errorf("expected ErrOverlap, got %v", err)
	}
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OverlapError, got %T", err)
	}
	if oe.Index != 1 || oe.PreviousEnd != "12:00" || oe.StartTime != "10:00" {
		t.Errorf("unexpected overlap details: %+v", oe)
	}
}

func TestPadGaps_BoolZeroValue(t *testing.T) {
	in := []Interval[bool]{{StartTime: "06:00", EndTime: "07:00", Value: true}}
	got, err := PadGaps(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Interval[bool]{
		{StartTime: "00:00", EndTime: "06:00"},
		{StartTime: "06:00", EndTime: "07:00", Value: true},
		{StartTime: "07:00", EndTime: "24:00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PadGaps mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval[float64]
		want []Interval[float64]
	}{
		{
			name: "merges equal neighbours",
			in: []Interval[float64]{
				iv("09:00", "10:00", 1),
				iv("10:00", "11:00", 1),
				iv("11:00", "12:00", 0),
				iv("12:00", "13:00", 0),
				iv("13:00", "14:00", 2),
			},
			want: []Interval[float64]{
				iv("09:00", "11:00", 1),
				iv("11:00", "13:00", 0),
				iv("13:00", "14:00", 2),
			},
		},
		{
			name: "gap breaks the run",
			in: []Interval[float64]{
				iv("09:00", "10:00", 1),
				iv("10:30", "11:00", 1),
			},
			want: []Interval[float64]{
				iv("09:00", "10:00", 1),
				iv("10:30", "11:00", 1),
			},
		},
		{
			name: "empty",
			in:   nil,
			want: []Interval[float64]{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collapse(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Collapse mismatch (-want +got):\n%s", diff)
			}
			if len(got) > len(tt.in) {
				t.Errorf("output longer than input: %d > %d", len(got), len(tt.in))
			}
		})
	}
}

func TestCollapse_DoesNotModifyInput(t *testing.T) {
	in := []Interval[float64]{iv("09:00", "10:00", 1), iv("10:00", "11:00", 1)}
	_ = Collapse(in)
	if in[0].EndTime != "10:00" {
		t.Errorf("input modified: %+v", in[0])
	}
}

func TestCollapseOperational(t *testing.T) {
	in := []Interval[float64]{
		iv("07:00", "07:30", 0.5),
		iv("07:30", "08:00", 1),
		iv("08:00", "08:30", 0),
		iv("08:30", "09:00", 0),
		iv("09:00", "09:30", 2),
		iv("10:00", "10:30", 2),
	}
	got := CollapseOperational(in)
	want := []Interval[bool]{
		{StartTime: "07:00", EndTime: "08:00", Value: true},
		{StartTime: "08:00", EndTime: "09:00", Value: false},
		{StartTime: "09:00", EndTime: "09:30", Value: true},
		{StartTime: "10:00", EndTime: "10:30", Value: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollapseOperational mismatch (-want +got):\n%s", diff)
	}
}

func TestMax(t *testing.T) {
	if got := Max[float64](nil); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	in := []Interval[float64]{iv("00:00", "08:00", 0), iv("08:00", "09:00", 2.5), iv("09:00", "24:00", 1)}
	if got := Max(in); got != 2.5 {
		t.Errorf("expected 2.5, got %v", got)
	}
}

func TestSplits(t *testing.T) {
	a := []Interval[float64]{iv("07:30", "08:00", 1), iv("08:00", "08:30", 2)}
	b := []Interval[float64]{iv("07:45", "08:30", 1)}
	got := Splits(a).Union(Splits(b)).Sorted()
	want := []Time{"07:30", "07:45", "08:00", "08:30"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Splits mismatch (-want +got):\n%s", diff)
	}
	if len(Splits[float64](nil)) != 0 {
		t.Error("expected empty set for empty series")
	}
}

func TestSplitRates(t *testing.T) {
	tests := []struct {
		name   string
		series []Interval[float64]
		splits []Time
		want   []Interval[float64]
	}{
		{
			name:   "cuts inside an interval",
			series: []Interval[float64]{iv("07:00", "09:00", 1), iv("09:00", "10:00", 2)},
			splits: []Time{"07:00", "07:30", "08:00", "09:00", "09:30", "10:00"},
			want: []Interval[float64]{
				iv("07:00", "07:30", 1),
				iv("07:30", "08:00", 1),
				iv("08:00", "09:00", 1),
				iv("09:00", "09:30", 2),
				iv("09:30", "10:00", 2),
			},
		},
		{
			name:   "splits outside the series are ignored",
			series: []Interval[float64]{iv("08:00", "09:00", 1)},
			splits: []Time{"06:00", "07:00", "10:00", "11:00"},
			want:   []Interval[float64]{iv("08:00", "09:00", 1)},
		},
		{
			name:   "splits exhausted leaves remaining rates untouched",
			series: []Interval[float64]{iv("08:00", "09:00", 1), iv("09:00", "10:00", 2), iv("10:00", "11:00", 3)},
			splits: []Time{"08:30"},
			want: []Interval[float64]{
				iv("08:00", "08:30", 1),
				iv("08:30", "09:00", 1),
				iv("09:00", "10:00", 2),
				iv("10:00", "11:00", 3),
			},
		},
		{
			name:   "no splits",
			series: []Interval[float64]{iv("08:00", "09:00", 1)},
			splits: nil,
			want:   []Interval[float64]{iv("08:00", "09:00", 1)},
		},
		{
			name:   "empty series",
			series: nil,
			splits: []Time{"08:00"},
			want:   []Interval[float64]{},
		},
		{
			name:   "series with gap",
			series: []Interval[float64]{iv("07:00", "08:00", 1), iv("09:00", "10:00", 2)},
			splits: []Time{"07:30", "08:30", "09:30"},
			want: []Interval[float64]{
				iv("07:00", "07:30", 1),
				iv("07:30", "08:00", 1),
				iv("09:00", "09:30", 2),
				iv("09:30", "10:00", 2),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRates(tt.series, tt.splits)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitRates mismatch (-want +got):\n%s", diff)
			}
			if Duration(got) != Duration(tt.series) {
				t.Errorf("coverage changed: %d != %d", Duration(got), Duration(tt.series))
			}
			for _, out := range got {
				src := tt.series[Find(tt.series, out.StartTime)]
				if src.Value != out.Value || out.EndTime > src.EndTime {
					t.Errorf("slice %+v does not come from %+v", out, src)
				}
			}
		})
	}
}

func TestSplitRates_DoesNotModifyInput(t *testing.T) {
	series := []Interval[float64]{iv("07:00", "09:00", 1)}
	_ = SplitRates(series, []Time{"08:00"})
	if series[0].StartTime != "07:00" {
		t.Errorf("input modified: %+v", series[0])
	}
}

func sampleRates() []Interval[float64] {
	return []Interval[float64]{
		iv("00:00", "08:00", 0),
		iv("08:00", "08:05", 0.25),
		iv("08:05", "08:30", 0.5),
		iv("08:30", "08:35", 1),
		iv("08:35", "09:55", 1.5),
	}
}

func TestFilterRates_MinimalWraps(t *testing.T) {
	rates := sampleRates()
	got := FilterRates(rates, ViewMinimal, "08:32")
	want := []Interval[float64]{rates[3], rates[4], rates[0], rates[1]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterRates mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRates_WindowAlwaysFull(t *testing.T) {
	rates := sampleRates()
	for _, r := range rates {
		got := FilterRates(rates, ViewMinimal, r.StartTime)
		if len(got) != WindowSize {
			t.Fatalf("time %s: expected %d rows, got %d", r.StartTime, WindowSize, len(got))
		}
		if got[0] != r {
			t.Errorf("time %s: expected containing interval first, got %+v", r.StartTime, got[0])
		}
	}
}

func TestFilterRates_Passthrough(t *testing.T) {
	rates := sampleRates()
	if got := FilterRates(rates, ViewAll, "08:32"); len(got) != len(rates) {
		t.Errorf("ViewAll should keep every row, got %d", len(got))
	}
	short := rates[:4]
	if diff := cmp.Diff(short, FilterRates(short, ViewMinimal, "08:32")); diff != "" {
		t.Errorf("short series should be unchanged (-want +got):\n%s", diff)
	}
}

func TestFilterRates_NotFound(t *testing.T) {
	got := FilterRates(sampleRates(), ViewMinimal, "10:00")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestParseView(t *testing.T) {
	if v, err := ParseView(""); err != nil || v != ViewMinimal {
		t.Errorf("empty view: got %q, %v", v, err)
	}
	if v, err := ParseView("all"); err != nil || v != ViewAll {
		t.Errorf("all view: got %q, %v", v, err)
	}
	if _, err := ParseView("compact"); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      []Interval[float64]
		wantErr error
	}{
		{"ok with gaps", []Interval[float64]{iv("07:00", "08:00", 1), iv("09:00", "10:00", 1)}, nil},
		{"full day", []Interval[float64]{iv("00:00", "24:00", 1)}, nil},
		{"empty interval", []Interval[float64]{iv("08:00", "08:00", 1)}, ErrEmptyInterval},
		{"bad time", []Interval[float64]{iv("8:00", "09:00", 1)}, ErrInvalidTime},
		{"unsorted", []Interval[float64]{iv("09:00", "10:00", 1), iv("07:00", "08:00", 1)}, ErrUnsorted},
		{"overlap", []Interval[float64]{iv("07:00", "08:30", 1), iv("08:00", "09:00", 1)}, ErrOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
