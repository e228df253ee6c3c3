package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type line struct {
	seller string
	price  float64
	qty    int
}

var lines = []line{
	{seller: "s1", price: 450, qty: 2},
	{seller: "s2", price: 300, qty: 1},
	{seller: "s1", price: 100, qty: 3},
}

func TestFilterAndSum(t *testing.T) {
	mine := Filter(lines, func(l line) bool { return l.seller == "s1" })
	assert.Len(t, mine, 2)

	subtotal := Sum(mine, func(l line) float64 { return l.price * float64(l.qty) })
	assert.Equal(t, 1200.0, subtotal)
}

func TestMap(t *testing.T) {
	sellers := Map(lines, func(l line) string { return l.seller })
	assert.Equal(t, []string{"s1", "s2", "s1"}, sellers)
}

func TestFirstAndContains(t *testing.T) {
	l, ok := First(lines, func(l line) bool { return l.seller == "s2" })
	assert.True(t, ok)
	assert.Equal(t, 300.0, l.price)

	_, ok = First(lines, func(l line) bool { return l.seller == "s9" })
	assert.False(t, ok)
	assert.False(t, Contains(lines, func(l line) bool { return l.seller == "s9" }))
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy(lines, func(l line) string { return l.seller })
	assert.Len(t, groups["s1"], 2)
	assert.Len(t, groups["s2"], 1)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))

	dedup := UniqueBy(lines, func(l line) string { return l.seller })
	assert.Len(t, dedup, 2)
}

func TestSortBy(t *testing.T) {
	sorted := SortBy(append([]line(nil), lines...), func(a, b line) bool { return a.price < b.price })
	assert.Equal(t, 100.0, sorted[0].price)
	assert.Equal(t, 450.0, sorted[2].price)
}

func TestKeyBy(t *testing.T) {
	bySeller := KeyBy(lines, func(l line) string { return l.seller })
	// Last element wins on duplicate keys.
	assert.Equal(t, 100.0, bySeller["s1"].price)
}

func TestPaginate(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Paginate(nums, 1, 2))
	assert.Equal(t, []int{5}, Paginate(nums, 3, 2))
	assert.Nil(t, Paginate(nums, 4, 2))
	assert.Equal(t, []int{1, 2}, Paginate(nums, 0, 2))
}
