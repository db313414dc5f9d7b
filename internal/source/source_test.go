package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
	"github.com/oakwood-commons/pagingmenu/pkg/loader"
)

func abc() *List {
	return NewList([]paging.Item{
		{ID: "c", Order: 2, Title: "Gamma"},
		{ID: "a", Order: 0, Title: "Alpha"},
		{ID: "b", Order: 1, Title: "Beta"},
	})
}

func TestListOrdersAndNavigates(t *testing.T) {
	l := abc()
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "a", l.At(0).ID)
	assert.Equal(t, "c", l.At(2).ID)

	next, ok := l.ItemAfter(l.At(0))
	require.True(t, ok)
	assert.Equal(t, "b", next.ID)

	_, ok = l.ItemAfter(l.At(2))
	assert.False(t, ok)
	_, ok = l.ItemBefore(l.At(0))
	assert.False(t, ok)
	_, ok = l.ItemAfter(paging.Item{ID: "missing"})
	assert.False(t, ok)

	i, ok := l.IndexOf(paging.Item{ID: "b"})
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestListDropsDuplicateIDs(t *testing.T) {
	l := NewList([]paging.Item{{ID: "a", Title: "first"}, {ID: "a", Title: "second", Order: 1}})
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "first", l.At(0).Title)
}

func TestListLookup(t *testing.T) {
	l := abc()
	tests := []struct {
		ref    string
		wantID string
		wantOK bool
	}{
		{"b", "b", true},
		{"gamma", "c", true},
		{"delta", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := l.Lookup(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFromRecordsKeepsBodies(t *testing.T) {
	records, err := loader.LoadItems(`[{"id": "x", "title": "X", "body": "hello"}, {"title": "Y", "order": -1}]`)
	require.NoError(t, err)

	l := FromRecords(records)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "y", l.At(0).ID)

	body, ok := l.Body(paging.Item{ID: "x"})
	require.True(t, ok)
	assert.Equal(t, "hello", body)
	_, ok = l.Body(paging.Item{ID: "y"})
	assert.False(t, ok)

	sub := l.Slice(1, 2)
	require.Equal(t, 1, sub.Len())
	body, ok = sub.Body(sub.At(0))
	require.True(t, ok)
	assert.Equal(t, "hello", body)
}

func TestProviderFinite(t *testing.T) {
	p := FromList(abc())
	assert.Equal(t, KindFinite, p.Kind())

	start, ok := p.Start()
	require.True(t, ok)
	assert.Equal(t, "a", start.ID)

	after, ok := p.ItemAfter(start)
	require.True(t, ok)
	assert.Equal(t, "b", after.ID)

	got, ok := p.Lookup("Beta")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)

	assert.Len(t, p.Candidates(nil), 3)
}

func TestProviderEmpty(t *testing.T) {
	var p Provider
	_, ok := p.Start()
	assert.False(t, ok)
	_, ok = p.ItemAfter(paging.IndexItem(0))
	assert.False(t, ok)
	_, ok = p.Lookup("x")
	assert.False(t, ok)

	_, ok = FromList(nil).Start()
	assert.False(t, ok)
}

func TestProviderInfinite(t *testing.T) {
	p := FromInfinite(NewIndex(WithMin(0)), paging.IndexItem(3))
	assert.Equal(t, KindInfinite, p.Kind())
	assert.Equal(t, "infinite", p.Kind().String())

	start, ok := p.Start()
	require.True(t, ok)
	assert.Equal(t, 3, start.Order)

	_, ok = p.List()
	assert.False(t, ok)

	got, ok := p.Lookup("item-7")
	require.True(t, ok)
	assert.Equal(t, paging.IndexItem(7), got)

	_, ok = p.Body(start)
	assert.False(t, ok)

	fallback := []paging.Item{paging.IndexItem(1)}
	assert.Equal(t, fallback, p.Candidates(fallback))
}

func TestIndexBounds(t *testing.T) {
	x := NewIndex(WithMin(0), WithMax(2))

	_, ok := x.ItemBefore(paging.IndexItem(0))
	assert.False(t, ok)
	_, ok = x.ItemAfter(paging.IndexItem(2))
	assert.False(t, ok)

	next, ok := x.ItemAfter(paging.IndexItem(1))
	require.True(t, ok)
	assert.Equal(t, paging.IndexItem(2), next)

	assert.Equal(t, 0, x.Clamp(-4))
	assert.Equal(t, 2, x.Clamp(9))

	_, ok = x.Lookup("5")
	assert.False(t, ok)
	got, ok := x.Lookup(" 1 ")
	require.True(t, ok)
	assert.Equal(t, paging.IndexItem(1), got)
}

func TestIndexUnbounded(t *testing.T) {
	x := NewIndex()
	prev, ok := x.ItemBefore(paging.IndexItem(0))
	require.True(t, ok)
	assert.Equal(t, -1, prev.Order)
	assert.Equal(t, "item--1", prev.ID)
}

func TestCalendar(t *testing.T) {
	c := NewCalendar()
	day := c.Day(time.Date(2024, time.February, 28, 17, 30, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-28", day.ID)
	assert.Equal(t, "Wed 28 Feb", day.Title)

	next, ok := c.ItemAfter(day)
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", next.ID)
	assert.Equal(t, day.Order+1, next.Order)

	prev, ok := c.ItemBefore(day)
	require.True(t, ok)
	assert.Equal(t, "2024-02-27", prev.ID)
	assert.True(t, prev.Before(day))

	epoch := c.Day(time.Unix(0, 0).UTC())
	assert.Equal(t, 0, epoch.Order)
	assert.Equal(t, -1, c.Day(time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC)).Order)

	got, ok := c.Lookup("2024-03-01")
	require.True(t, ok)
	assert.Equal(t, "Fri 01 Mar", got.Title)

	_, ok = c.Lookup("yesterday")
	assert.False(t, ok)
	_, ok = c.ItemAfter(paging.IndexItem(1))
	assert.False(t, ok)

	body, ok := c.Body(day)
	require.True(t, ok)
	assert.Contains(t, body, "# Wednesday")
	assert.Contains(t, body, "Day 59 of the year")
}

func TestDateOf(t *testing.T) {
	got, err := DateOf(paging.Item{ID: "2023-12-31"})
	require.NoError(t, err)
	assert.Equal(t, time.December, got.Month())

	_, err = DateOf(paging.Item{ID: "item-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a date")
}
