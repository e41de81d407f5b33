package sum_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sumtypes/pkg/sum"
)

func TestConstIterator_Next(t *testing.T) {
	t.Parallel()

	it := sum.NewConstIterator(1, 2)
	assert.Equal(t, sum.Some(1), it.Next())
	assert.Equal(t, sum.Some(2), it.Next())
	for range 3 {
		assert.Equal(t, sum.None[int](), it.Next())
	}
}

func TestConstIterator_Empty(t *testing.T) {
	t.Parallel()

	it := sum.NewConstIterator[string]()
	assert.True(t, it.Next().IsNone())
	assert.True(t, it.Next().IsNone())
}

func TestConstIterator_OwnsValues(t *testing.T) {
	t.Parallel()

	values := []int{1, 2}
	it := sum.NewConstIterator(values...)
	values[0] = 100

	assert.Equal(t, sum.Some(1), it.Next())
	assert.Equal(t, []int{100, 2}, values)
}

func TestIntoIter_Option(t *testing.T) {
	t.Parallel()

	t.Run("Some yields once", func(t *testing.T) {
		it := sum.Some("Hello").IntoIter()
		assert.Equal(t, sum.Some("Hello"), it.Next())
		assert.True(t, it.Next().IsNone())
		assert.True(t, it.Next().IsNone())
	})

	t.Run("None yields nothing", func(t *testing.T) {
		it := sum.None[string]().IntoIter()
		assert.True(t, it.Next().IsNone())
		assert.True(t, it.Next().IsNone())
	})

	t.Run("independent iterators", func(t *testing.T) {
		o := sum.Some(7)
		first := o.IntoIter()
		second := o.IntoIter()

		assert.Equal(t, sum.Some(7), first.Next())
		assert.True(t, first.Next().IsNone())
		assert.Equal(t, sum.Some(7), second.Next())
		assert.Equal(t, sum.Some(7), o)
	})
}

func TestIntoIter_Result(t *testing.T) {
	t.Parallel()

	it := sum.Ok[string, int]("Hello").IntoIter()
	assert.Equal(t, sum.Some("Hello"), it.Next())
	assert.True(t, it.Next().IsNone())

	it = sum.Err[string](-1).IntoIter()
	assert.True(t, it.Next().IsNone())
	assert.True(t, it.Next().IsNone())
}

func TestIntoIterator_Interface(t *testing.T) {
	t.Parallel()

	containers := []sum.IntoIterator[int]{
		sum.Some(1),
		sum.None[int](),
		sum.Ok[int, string](2),
		sum.Err[int]("boom"),
	}
	var got []int
	for _, c := range containers {
		got = append(got, sum.Collect(c.IntoIter())...)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestMap_Lazy(t *testing.T) {
	t.Parallel()

	calls := 0
	double := func(n int) int {
		calls++
		return n * 2
	}

	m := sum.Map(sum.Some(5).IntoIter(), double)
	assert.Equal(t, 0, calls, "building the chain must not call the transform")

	assert.Equal(t, sum.Some(10), m.Next())
	assert.Equal(t, 1, calls)

	assert.True(t, m.Next().IsNone())
	assert.True(t, m.Next().IsNone())
	assert.Equal(t, 1, calls)
}

func TestMap_NeverCalledOnNone(t *testing.T) {
	t.Parallel()

	called := false
	m := sum.Map(sum.None[int]().IntoIter(), func(n int) int {
		called = true
		return n
	})
	assert.True(t, m.Next().IsNone())
	assert.False(t, called)
}

type countingIter struct {
	src   sum.Iterator[int]
	pulls int
}

func (c *countingIter) Next() sum.Option[int] {
	c.pulls++
	return c.src.Next()
}

func TestMap_ChainPullsOncePerStage(t *testing.T) {
	t.Parallel()

	src := &countingIter{src: sum.NewConstIterator(1, 2)}
	var stages []string
	chain := sum.Map[int, string](
		sum.Map[int, int](src, func(n int) int {
			stages = append(stages, "inc")
			return n + 1
		}).Map(func(n int) int {
			stages = append(stages, "square")
			return n * n
		}),
		strconv.Itoa)

	assert.Equal(t, 0, src.pulls)
	assert.Empty(t, stages)

	assert.Equal(t, sum.Some("4"), chain.Next())
	assert.Equal(t, 1, src.pulls)
	assert.Equal(t, []string{"inc", "square"}, stages)

	assert.Equal(t, sum.Some("9"), chain.Next())
	assert.Equal(t, 2, src.pulls)

	assert.True(t, chain.Next().IsNone())
	assert.Equal(t, 3, src.pulls)
	assert.Len(t, stages, 4)
}

func TestConstIterator_Map(t *testing.T) {
	t.Parallel()

	m := sum.NewConstIterator("a", "b").Map(func(s string) string { return s + s })
	assert.Equal(t, []string{"aa", "bb"}, sum.Collect[string](m))
}

func TestSeq(t *testing.T) {
	t.Parallel()

	var got []int
	for v := range sum.Seq(sum.Some(3).IntoIter()) {
		got = append(got, v)
	}
	assert.Equal(t, []int{3}, got)

	for range sum.Seq(sum.None[int]().IntoIter()) {
		require.FailNow(t, "None must not yield")
	}
}

func TestSeq_Break(t *testing.T) {
	t.Parallel()

	it := sum.NewConstIterator(1, 2, 3)
	for v := range sum.Seq[int](it) {
		if v == 1 {
			break
		}
	}
	assert.Equal(t, sum.Some(2), it.Next())
}

func TestCollect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{}, sum.Collect(sum.None[int]().IntoIter()))
	assert.Equal(t, []int{1}, sum.Collect(sum.Some(1).IntoIter()))
}
