package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		itemCount int
		pageSize  int
		want      int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{20, 10, 2},
		{23, 10, 3},
		{23, 4, 6},
		{0, 4, 0},
	}
	for _, c := range cases {
		got := TotalPages(c.itemCount, c.pageSize)
		if got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.itemCount, c.pageSize, got, c.want)
		}
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name      string
		itemCount int
		page      int
		pageSize  int
		start     int
		end       int
		clamped   int
	}{
		{"first page", 23, 1, 10, 0, 10, 1},
		{"middle page", 23, 2, 10, 10, 20, 2},
		{"last partial page", 23, 3, 10, 20, 23, 3},
		{"page past the end is clamped", 23, 5, 10, 20, 23, 3},
		{"page zero is clamped up", 23, 0, 10, 0, 10, 1},
		{"empty collection", 0, 1, 10, 0, 0, 1},
		{"empty collection, stale page", 0, 4, 10, 0, 0, 1},
		{"card list page size", 9, 3, 4, 8, 9, 3},
	}
	for _, c := range cases {
		start, end, clamped := Window(c.itemCount, c.page, c.pageSize)
		if start != c.start || end != c.end || clamped != c.clamped {
			t.Errorf("%s: Window(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				c.name, c.itemCount, c.page, c.pageSize, start, end, clamped, c.start, c.end, c.clamped)
		}
	}
}
