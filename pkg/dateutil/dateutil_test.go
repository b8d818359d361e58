package dateutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"Valid date",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Leap day",
			"29.02.2024",
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			false,
		},
		{"Calendar-invalid date", "31.02.2000", time.Time{}, true},
		{"Leap day in non-leap year", "29.02.2023", time.Time{}, true},
		{"Single-digit day", "1.01.2025", time.Time{}, true},
		{"Single-digit month", "15.1.2025", time.Time{}, true},
		{"Two-digit year", "15.01.25", time.Time{}, true},
		{"ISO format", "2025-01-15", time.Time{}, true},
		{"Empty string", "", time.Time{}, true},
		{"Garbage", "not-a-date", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	inputs := []string{"15.01.2025", "29.02.2024", "01.12.1999"}

	for _, input := range inputs {
		parsed, err := ParseDate(input)
		if err != nil {
			t.Errorf("Round trip failed for %q: parse error %v", input, err)
			continue
		}

		if got := FormatDate(parsed); got != input {
			t.Errorf("Round trip failed for %q: got %q", input, got)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestShiftOffWeekend(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Saturday shifts to Monday",
			input:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), // Saturday
			expected: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), // Monday
		},
		{
			name:     "Sunday shifts to Monday",
			input:    time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), // Sunday
			expected: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Wednesday stays put",
			input:    time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShiftOffWeekend(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("ShiftOffWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			"Same day",
			time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC),
			0,
		},
		{
			"Two days ahead",
			time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			2,
		},
		{
			"Negative when 'to' is earlier",
			time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
			-2,
		},
		{
			"Across a year boundary",
			time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysBetween(tt.from, tt.to)

			if got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %v, want %v",
					tt.from, tt.to, got, tt.want)
			}
		})
	}
}
