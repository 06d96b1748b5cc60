package pagination

import "testing"

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name      string
		req       PageRequest
		want      []string
		wantPages int
	}{
		{"defaults return everything", PageRequest{}, items, 1},
		{"first page", PageRequest{Page: 1, PageSize: 2}, []string{"a", "b"}, 3},
		{"last partial page", PageRequest{Page: 3, PageSize: 2}, []string{"e"}, 3},
		{"past the end", PageRequest{Page: 4, PageSize: 2}, []string{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page := Slice(items, tt.req)
			if got == nil {
				t.Fatal("expected a non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
			if page.TotalPages != tt.wantPages || page.TotalItems != len(items) {
				t.Errorf("unexpected page %+v", page)
			}
		})
	}
}
