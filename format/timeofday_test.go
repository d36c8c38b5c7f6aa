package format_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/collection-cache/format"
)

func TestTimeToAmPm(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		input string
		want  string
	}{
		{input: "14:30", want: "02:30 PM"},
		{input: "00:15", want: "12:15 AM"},
		{input: "12:00", want: "12:00 PM"},
		{input: "09:05", want: "09:05 AM"},
		{input: "23:59", want: "11:59 PM"},
		{input: "24:00", want: ""},
		{input: "noon", want: ""},
		{input: "", want: ""},
	} {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := format.TimeToAmPm(tt.input); got != tt.want {
				t.Errorf("TimeToAmPm(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmPmToTime(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		input string
		want  format.TimeRange
	}{
		{input: "02:30 PM - 03:00 PM", want: format.TimeRange{StartTime: "14:30", EndTime: "15:00"}},
		{input: "12:00 AM - 12:30 PM", want: format.TimeRange{StartTime: "00:00", EndTime: "12:30"}},
		{input: "9:00 am-10:15 am", want: format.TimeRange{StartTime: "09:00", EndTime: "10:15"}},
		{input: "no dash here", want: format.TimeRange{}},
		{input: "", want: format.TimeRange{}},
		{input: "02:30 PM - later", want: format.TimeRange{}},
	} {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, format.AmPmToTime(tt.input)); diff != "" {
				t.Errorf("AmPmToTime(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, hhmm := range []string{"00:00", "06:45", "12:00", "13:01", "23:59"} {
		r := format.AmPmToTime(format.TimeToAmPm(hhmm) + " - " + format.TimeToAmPm(hhmm))
		if r.StartTime != hhmm || r.EndTime != hhmm {
			t.Errorf("round trip of %q produced %+v", hhmm, r)
		}
	}
}
