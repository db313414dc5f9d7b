package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

func TestFilterList(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"by title", `item.title.startsWith("B") || item.title == "Gamma"`, []string{"b", "c"}},
		{"by order", `item.order >= 1`, []string{"b", "c"}},
		{"underscore alias", `_.id == "a"`, []string{"a"}},
		{"nothing", `false`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.expr)
			require.NoError(t, err)

			got, err := f.List(abc())
			require.NoError(t, err)
			var ids []string
			for _, it := range got.Items() {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{"syntax", `item.title ==`, "invalid filter"},
		{"not bool", `item.order + 1`, "must evaluate to bool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFilter(tt.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFilterInfinite(t *testing.T) {
	f, err := NewFilter(`item.order % 3 == 0`)
	require.NoError(t, err)
	assert.Equal(t, `item.order % 3 == 0`, f.String())

	s := f.Infinite(NewIndex(WithMin(0)), 0)

	next, ok := s.ItemAfter(paging.IndexItem(0))
	require.True(t, ok)
	assert.Equal(t, 3, next.Order)

	prev, ok := s.ItemBefore(paging.IndexItem(4))
	require.True(t, ok)
	assert.Equal(t, 3, prev.Order)

	_, ok = s.ItemBefore(paging.IndexItem(2))
	require.True(t, ok)
	_, ok = s.ItemBefore(paging.IndexItem(0))
	assert.False(t, ok)

	anchor, ok := s.Anchor(paging.IndexItem(4))
	require.True(t, ok)
	assert.Equal(t, 6, anchor.Order)

	got, ok := s.Lookup("9")
	require.True(t, ok)
	assert.Equal(t, 9, got.Order)
	_, ok = s.Lookup("10")
	assert.False(t, ok)

	require.NoError(t, s.Err())
}

func TestFilterInfiniteScanLimit(t *testing.T) {
	f, err := NewFilter(`item.order == 500`)
	require.NoError(t, err)

	s := f.Infinite(NewIndex(), 10)
	_, ok := s.ItemAfter(paging.IndexItem(0))
	assert.False(t, ok)

	s = f.Infinite(NewIndex(), 0)
	got, ok := s.ItemAfter(paging.IndexItem(0))
	require.True(t, ok)
	assert.Equal(t, 500, got.Order)
}

func TestFilterInfiniteRecordsEvalErrors(t *testing.T) {
	f, err := NewFilter(`item.missing == 1`)
	require.NoError(t, err)

	s := f.Infinite(NewIndex(), 3)
	_, ok := s.ItemAfter(paging.IndexItem(0))
	assert.False(t, ok)
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "item-1")
}

func TestFilterInfiniteBodies(t *testing.T) {
	f, err := NewFilter(`true`)
	require.NoError(t, err)

	s := f.Infinite(NewCalendar(), 0)
	_, ok := s.Body(paging.Item{ID: "2024-01-01"})
	assert.True(t, ok)

	s = f.Infinite(NewIndex(), 0)
	_, ok = s.Body(paging.IndexItem(1))
	assert.False(t, ok)
}

func TestClosest(t *testing.T) {
	items := []paging.Item{
		{ID: "home", Title: "Home"},
		{ID: "settings", Title: "Settings"},
		{ID: "set-theory", Title: "Set theory"},
		{ID: "about", Title: "About us"},
	}
	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{"exact id", "about", "about", true},
		{"exact title any case", "set THEORY", "set-theory", true},
		{"prefix keeps first", "set", "settings", true},
		{"substring", "us", "about", true},
		{"typo", "hme", "home", true},
		{"typo in longer title", "setings", "settings", true},
		{"too far", "xyz", "", false},
		{"blank", "  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(items, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}
