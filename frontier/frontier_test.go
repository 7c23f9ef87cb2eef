package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/frontier"
)

// FrontierSuite exercises ordering and duplicate handling.
type FrontierSuite struct {
	suite.Suite
}

// TestEmpty verifies Pop on an empty frontier.
func (s *FrontierSuite) TestEmpty() {
	var f frontier.Frontier[string]
	require.True(s.T(), f.IsEmpty())
	_, ok := f.Pop()
	require.False(s.T(), ok)
	_, _, ok = f.PopWithPriority()
	require.False(s.T(), ok)
}

// TestMinFirst pops in ascending priority.
func (s *FrontierSuite) TestMinFirst() {
	f := frontier.New[string](4)
	f.Add("c", 3)
	f.Add("a", 1)
	f.Add("b", 2)

	var got []string
	for !f.IsEmpty() {
		v, _ := f.Pop()
		got = append(got, v)
	}
	require.Equal(s.T(), []string{"a", "b", "c"}, got)
}

// TestTiesFIFO keeps insertion order among equal priorities.
func (s *FrontierSuite) TestTiesFIFO() {
	f := frontier.New[int](0)
	for i := 0; i < 10; i++ {
		f.Add(i, 5)
	}
	f.Add(-1, 4)

	v, p, ok := f.PopWithPriority()
	require.True(s.T(), ok)
	require.Equal(s.T(), -1, v)
	require.Equal(s.T(), 4, p)
	for i := 0; i < 10; i++ {
		v, _ := f.Pop()
		require.Equal(s.T(), i, v)
	}
}

// TestDuplicates keeps every copy of an item.
func (s *FrontierSuite) TestDuplicates() {
	f := frontier.New[*int](0)
	x := new(int)
	f.Add(x, 7)
	f.Add(x, 2)
	require.Equal(s.T(), 2, f.Len())

	a, pa, _ := f.PopWithPriority()
	b, pb, _ := f.PopWithPriority()
	require.Same(s.T(), x, a)
	require.Same(s.T(), x, b)
	require.Equal(s.T(), []int{2, 7}, []int{pa, pb})
}

// TestRandomAgainstSort compares against a stable sort of the same input.
func (s *FrontierSuite) TestRandomAgainstSort() {
	type in struct{ id, pr int }
	rng := rand.New(rand.NewSource(7))
	items := make([]in, 500)
	f := frontier.New[int](len(items))
	for i := range items {
		items[i] = in{id: i, pr: rng.Intn(20)}
		f.Add(i, items[i].pr)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].pr < items[j].pr })

	for _, want := range items {
		got, ok := f.Pop()
		require.True(s.T(), ok)
		require.Equal(s.T(), want.id, got)
	}
	require.True(s.T(), f.IsEmpty())
}

func TestFrontierSuite(t *testing.T) {
	suite.Run(t, new(FrontierSuite))
}
