package utils

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct {
		name      string
		totalRows int
		page      int
		limit     int
		wantPage  int
		wantPages int
		wantStart int
		wantEnd   int
	}{
		{"two pages of five", 7, 1, 5, 1, 2, 0, 5},
		{"second page partial", 7, 2, 5, 2, 2, 5, 7},
		{"page past the end clamps", 7, 3, 5, 2, 2, 5, 7},
		{"page zero clamps to one", 7, 0, 5, 1, 2, 0, 5},
		{"negative page clamps to one", 7, -4, 5, 1, 2, 0, 5},
		{"empty list", 0, 5, 5, 1, 0, 0, 0},
		{"default limit", 25, 1, 0, 1, 3, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClampPage(tt.totalRows, tt.page, tt.limit)
			if info.Page != tt.wantPage {
				t.Fatalf("page = %d, want %d", info.Page, tt.wantPage)
			}
			if info.TotalPages != tt.wantPages {
				t.Fatalf("total pages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			start, end := info.Bounds()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("bounds = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPageInfoOffset(t *testing.T) {
	info := ClampPage(100, 3, 10)
	if info.Offset() != 20 {
		t.Fatalf("offset = %d, want 20", info.Offset())
	}
}
