package pkg

import "testing"

func TestNewPaginationParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := NewPaginationParams("", "")
		if p.Page != 1 || p.Limit != 10 || p.Skip != 0 {
			t.Fatalf("unexpected params: %+v", p)
		}
	})

	t.Run("page zero is clamped to one", func(t *testing.T) {
		p := NewPaginationParams("0", "10")
		if p.Page != 1 || p.Skip != 0 {
			t.Fatalf("unexpected params: %+v", p)
		}
	})

	t.Run("limit is clamped to fifty", func(t *testing.T) {
		p := NewPaginationParams("1", "1000")
		if p.Limit != 50 {
			t.Fatalf("expected limit 50, got %d", p.Limit)
		}
	})

	t.Run("limit below one is clamped to one", func(t *testing.T) {
		p := NewPaginationParams("1", "-3")
		if p.Limit != 1 {
			t.Fatalf("expected limit 1, got %d", p.Limit)
		}
	})

	t.Run("non-numeric values fall back to defaults", func(t *testing.T) {
		p := NewPaginationParams("abc", "xyz")
		if p.Page != 1 || p.Limit != 10 {
			t.Fatalf("unexpected params: %+v", p)
		}
	})

	t.Run("skip follows page and limit", func(t *testing.T) {
		p := NewPaginationParams("3", "20")
		if p.Skip != 40 {
			t.Fatalf("expected skip 40, got %d", p.Skip)
		}
	})
}

func TestNewPaginationMeta(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		meta := NewPaginationMeta(45, PaginationParams{Page: 2, Limit: 10, Skip: 10})
		if meta.Total != 45 || meta.Pages != 5 || meta.Current != 2 {
			t.Fatalf("unexpected meta: %+v", meta)
		}
		if !meta.HasNext || !meta.HasPrev {
			t.Fatalf("expected both hasNext and hasPrev: %+v", meta)
		}
	})

	t.Run("single page", func(t *testing.T) {
		meta := NewPaginationMeta(3, PaginationParams{Page: 1, Limit: 10})
		if meta.Pages != 1 || meta.HasNext || meta.HasPrev {
			t.Fatalf("unexpected meta: %+v", meta)
		}
	})

	t.Run("empty result set", func(t *testing.T) {
		meta := NewPaginationMeta(0, PaginationParams{Page: 1, Limit: 10})
		if meta.Pages != 0 || meta.HasNext || meta.HasPrev {
			t.Fatalf("unexpected meta: %+v", meta)
		}
	})
}
