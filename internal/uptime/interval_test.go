package uptime

import (
	"reflect"
	"testing"
	"time"

	"github.com/statuswatch/statuswatch/internal/models"
)

var base = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// iv builds an interval from hour offsets relative to base.
func iv(startHour, endHour int) models.Interval {
	return models.Interval{
		Start: base.Add(time.Duration(startHour) * time.Hour),
		End:   base.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Interval
		want []models.Interval
	}{
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
		{
			name: "single interval",
			in:   []models.Interval{iv(1, 3)},
			want: []models.Interval{iv(1, 3)},
		},
		{
			name: "overlapping pair merges",
			in:   []models.Interval{iv(1, 3), iv(2, 5), iv(7, 9)},
			want: []models.Interval{iv(1, 5), iv(7, 9)},
		},
		{
			name: "touching intervals merge",
			in:   []models.Interval{iv(1, 3), iv(3, 5)},
			want: []models.Interval{iv(1, 5)},
		},
		{
			name: "contained interval absorbed",
			in:   []models.Interval{iv(1, 10), iv(3, 5)},
			want: []models.Interval{iv(1, 10)},
		},
		{
			name: "disjoint intervals stay separate",
			in:   []models.Interval{iv(5, 6), iv(1, 2), iv(3, 4)},
			want: []models.Interval{iv(1, 2), iv(3, 4), iv(5, 6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	in := []models.Interval{iv(1, 3), iv(2, 5), iv(7, 9)}
	once := Merge(in)
	twice := Merge(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merging a merged set changed it: %v vs %v", once, twice)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	perms := [][]models.Interval{
		{iv(1, 3), iv(2, 5), iv(7, 9)},
		{iv(2, 5), iv(1, 3), iv(7, 9)},
		{iv(7, 9), iv(2, 5), iv(1, 3)},
		{iv(7, 9), iv(1, 3), iv(2, 5)},
		{iv(1, 3), iv(7, 9), iv(2, 5)},
		{iv(2, 5), iv(7, 9), iv(1, 3)},
	}
	want := []models.Interval{iv(1, 5), iv(7, 9)}

	for i, perm := range perms {
		if got := Merge(perm); !reflect.DeepEqual(got, want) {
			t.Errorf("permutation %d: Merge(%v) = %v, want %v", i, perm, got, want)
		}
	}
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	in := []models.Interval{iv(7, 9), iv(1, 3)}
	Merge(in)
	if !reflect.DeepEqual(in, []models.Interval{iv(7, 9), iv(1, 3)}) {
		t.Errorf("Merge reordered its input: %v", in)
	}
}
