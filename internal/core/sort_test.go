package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/deskfolio/internal/model"
)

func ids(windows []model.Window) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.ID
	}
	return out
}

func TestSort_Empty(t *testing.T) {
	var windows []model.Window
	Sort(windows, DefaultSortOptions())
	assert.Len(t, windows, 0)
}

func TestSort_ByZDesc(t *testing.T) {
	windows := []model.Window{
		{ID: "a", ZIndex: 10},
		{ID: "b", ZIndex: 12},
		{ID: "c", ZIndex: 11},
	}

	Sort(windows, DefaultSortOptions())
	assert.Equal(t, []string{"b", "c", "a"}, ids(windows))
}

func TestSort_ByZAsc(t *testing.T) {
	windows := []model.Window{
		{ID: "a", ZIndex: 10},
		{ID: "b", ZIndex: 12},
		{ID: "c", ZIndex: 11},
	}

	Sort(windows, SortOptions{Field: SortByZ, Order: SortAsc})
	assert.Equal(t, []string{"a", "c", "b"}, ids(windows))
}

func TestSort_ByOpened(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	windows := []model.Window{
		{ID: "a", OpenedAt: base.Add(2 * time.Minute)},
		{ID: "b", OpenedAt: base},
		{ID: "c", OpenedAt: base.Add(time.Minute)},
	}

	Sort(windows, SortOptions{Field: SortByOpened, Order: SortAsc})
	assert.Equal(t, []string{"b", "c", "a"}, ids(windows))

	Sort(windows, SortOptions{Field: SortByOpened, Order: SortDesc})
	assert.Equal(t, []string{"a", "c", "b"}, ids(windows))
}

func TestSort_ByKindFollowsDock(t *testing.T) {
	windows := []model.Window{
		{ID: "games", Kind: model.KindGames},
		{ID: "term", Kind: model.KindTerminal},
		{ID: "blog", Kind: model.KindBlog},
	}

	Sort(windows, SortOptions{Field: SortByKind, Order: SortAsc})
	assert.Equal(t, []string{"term", "blog", "games"}, ids(windows))
}

func TestSort_EqualKeysKeepOrder(t *testing.T) {
	windows := []model.Window{
		{ID: "a", ZIndex: 10},
		{ID: "b", ZIndex: 10},
	}

	Sort(windows, SortOptions{Field: SortByZ, Order: SortDesc})
	assert.Equal(t, []string{"a", "b"}, ids(windows))
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		input    string
		expected SortField
	}{
		{"z", SortByZ},
		{"stack", SortByZ},
		{"opened", SortByOpened},
		{"TIME", SortByOpened},
		{"kind", SortByKind},
		{"dock", SortByKind},
		{"", SortByZ},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortField(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseSortField("bogus")
	assert.Error(t, err)
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected SortOrder
	}{
		{"asc", SortAsc},
		{"Ascending", SortAsc},
		{"desc", SortDesc},
		{"d", SortDesc},
		{"", SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortOrder(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseSortOrder("sideways")
	assert.Error(t, err)
}
