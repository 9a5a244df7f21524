package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: TimeOfDay(9 * 60)},
		{in: "09:00:00", want: TimeOfDay(9 * 60)},
		{in: "23:59:59", want: TimeOfDay(23*60 + 59)},
		{in: "00:00", want: TimeOfDay(0)},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutesWrapsAtMidnight(t *testing.T) {
	assert.Equal(t, MustParse("09:30"), MustParse("09:00").AddMinutes(30))
	assert.Equal(t, MustParse("00:15"), MustParse("23:45").AddMinutes(30))
	assert.Equal(t, MustParse("23:45"), MustParse("00:15").AddMinutes(-30))
	assert.Equal(t, MustParse("10:00"), MustParse("10:00").AddMinutes(0))
}

func TestString(t *testing.T) {
	assert.Equal(t, "09:05:00", MustParse("09:05").String())
	assert.Equal(t, "00:00:00", TimeOfDay(0).String())
	assert.Equal(t, "16:30:00", MustParse("16:30:45").String())
}

func TestOverlaps(t *testing.T) {
	p := MustParse

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd TimeOfDay
		want                       bool
	}{
		{"disjoint", p("09:00"), p("10:00"), p("11:00"), p("12:00"), false},
		{"contained", p("09:00"), p("12:00"), p("10:00"), p("11:00"), true},
		{"partial", p("09:00"), p("10:30"), p("10:00"), p("11:00"), true},
		{"touching at end is not overlap", p("09:00"), p("10:00"), p("10:00"), p("11:00"), false},
		{"touching at start is not overlap", p("10:00"), p("11:00"), p("09:00"), p("10:00"), false},
		{"identical", p("09:00"), p("10:00"), p("09:00"), p("10:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}
