package collections_test

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestEachFunc(t *testing.T) {
	var got []string
	collections.Each(scores(), func(v int, k collections.Key) {
		got = append(got, fmt.Sprintf("%s=%d", k, v))
	})
	assert.Equal(t, []string{"alice=9", "bob=4", "carol=7"}, got)
}

func TestEachOf(t *testing.T) {
	var keys []string
	err := collections.EachOf(map[string]any{"y": 1, "x": 2}, func(_ any, k collections.Key, _ *collections.Collection[any]) {
		keys = append(keys, k.Name)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, keys)

	calls := 0
	err = collections.EachOf(17, func(any, collections.Key, *collections.Collection[any]) { calls++ })
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "int")
	assert.Zero(t, calls)
}

func TestIndexOfFunc(t *testing.T) {
	assert.Equal(t, 1, collections.IndexOf(ints(1, 2, 3, 2), 2))
	assert.Equal(t, -1, collections.IndexOf(ints(1, 2), 9))
	assert.Equal(t, 2, collections.IndexOf(scores(), 7), "position of carol in key order")
}

func TestUniqFunc(t *testing.T) {
	got := collections.Uniq(ints(1, 2, 1, 3, 1, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, got.All())
	assert.Equal(t, got.All(), collections.Uniq(got).All())
}

func TestNestedSequencesDoNotPanic(t *testing.T) {
	inner := []any{1, 2}
	c := collections.New[any](inner, 1, inner, []any{1, 2}, map[string]any{"a": 1})

	assert.NotPanics(t, func() {
		assert.Len(t, collections.Uniq(c).All(), 4, "the repeated inner slice is dropped")
		assert.Equal(t, 0, collections.IndexOf(c, any(inner)))
		assert.Equal(t, -1, collections.IndexOf(c, any([]any{1, 2})))
		assert.True(t, collections.Contains(c, any(inner)))
		assert.Len(t, collections.Intersection(c, collections.New[any](inner)).All(), 2)
		assert.Len(t, collections.Difference(c, collections.New[any](inner, 1)).All(), 2)
	})
}

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n int, _ collections.Key) string {
		return strconv.Itoa(n * 2)
	}).All()
	assert.Equal(t, []string{"2", "4", "6"}, got)
}

func TestMapOnMappingUsesValuesOnly(t *testing.T) {
	got := collections.Map(scores(), func(n int, _ collections.Key) int { return n * 10 })
	assert.False(t, got.IsMapping())
	assert.Equal(t, []int{90, 40, 70}, got.All())
}

func TestPluckFunc(t *testing.T) {
	type Person struct{ Name string }
	people := collections.New(Person{"Alice"}, Person{"Bob"}, Person{"Carol"})
	assert.Equal(t, []any{"Alice", "Bob", "Carol"}, collections.Pluck(people, "Name").All())

	records := collections.MustOf([]any{
		map[string]any{"name": "moe"},
		map[string]any{"age": 3},
	})
	assert.Equal(t, []any{"moe", nil}, collections.Pluck(records, "name").All())
}

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n int, _ collections.Key) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	assert.Equal(t, "1,2,3", s)
	assert.Equal(t, 6, collections.Reduce(ints(1, 2, 3), func(a, b int, _ collections.Key) int { return a + b }, 0))
}

func TestReduceFirstFunc(t *testing.T) {
	got, err := collections.ReduceFirst(ints(5), func(acc, n int, _ collections.Key) int { return acc + n*n })
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	var seen []string
	got, err = collections.ReduceFirst(scores(), func(acc, n int, k collections.Key) int {
		seen = append(seen, k.Name)
		return acc + n
	})
	require.NoError(t, err)
	assert.Equal(t, 20, got)
	assert.Equal(t, []string{"bob", "carol"}, seen, "first value seeds the accumulator")
}

func TestContainsFunc(t *testing.T) {
	assert.True(t, collections.Contains(scores(), 4))
	assert.False(t, collections.Contains(scores(), 5))
	assert.False(t, collections.Contains(collections.Empty[int](), 0))
}

func TestEverySomeFunc(t *testing.T) {
	pos := func(n int) bool { return n > 0 }
	assert.True(t, collections.Every(scores(), pos))
	assert.True(t, collections.Every(collections.Empty[int](), pos))
	assert.False(t, collections.Some(collections.Empty[int](), pos))
	assert.True(t, collections.Some(ints(-1, 0, 1), pos))

	assert.False(t, collections.Every(collections.MustOf([]any{1, "", true}), nil))
	assert.True(t, collections.Some(collections.MustOf([]any{0, "", "x"}), nil))
}

func TestShuffleFunc(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6)
	got := collections.Shuffle(c).All()
	slices.Sort(got)
	assert.Equal(t, c.All(), got)
	assert.NotSame(t, c, collections.Shuffle(c))
}

func TestSortByFunc(t *testing.T) {
	got := collections.SortBy(collections.New("ccc", "a", "bb"), func(s string) int { return len(s) })
	assert.Equal(t, []string{"a", "bb", "ccc"}, got.All())
}

func TestSortByKeyFunc(t *testing.T) {
	c := collections.MustOf([]any{
		map[string]any{"k": 1, "id": "a"},
		map[string]any{"k": 1, "id": "b"},
		map[string]any{"k": 0, "id": "c"},
	})
	sorted, err := collections.SortByKey(c, "k")
	require.NoError(t, err)
	assert.Equal(t, []any{"c", "a", "b"}, collections.Pluck(sorted, "id").All())

	_, err = collections.SortByKey(collections.MustOf([]any{map[string]any{"k": 1}, map[string]any{"k": "x"}}), "k")
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestInvokeFunc(t *testing.T) {
	got := collections.Invoke(collections.New("a", "b"), func(s string, args ...any) string {
		return strings.Repeat(s, args[0].(int))
	}, 3)
	assert.Equal(t, []string{"aaa", "bbb"}, got.All())
}

type label string

func (l label) Shout(suffix string) string { return strings.ToUpper(string(l)) + suffix }

func TestInvokeMethodGoMethod(t *testing.T) {
	got, err := collections.InvokeMethod(collections.New(label("hi"), label("yo")), "Shout", "!")
	require.NoError(t, err)
	assert.Equal(t, []any{"HI!", "YO!"}, got.All())
}

func TestInvokeMethodRegistryFallback(t *testing.T) {
	t.Cleanup(collections.FlushMethods)
	collections.RegisterMethod("double", func(v any, _ ...any) (any, error) {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("double: %T is not an int", v)
		}
		return n * 2, nil
	})

	got, err := collections.InvokeMethod(ints(1, 2, 3), "double")
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4, 6}, got.All())

	_, err = collections.InvokeMethod(collections.New[any](1, "two"), "double")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
	assert.Contains(t, err.Error(), "string is not an int")
}

func TestInvokeMethodGoMethodWins(t *testing.T) {
	t.Cleanup(collections.FlushMethods)
	collections.RegisterMethod("Shout", func(any, ...any) (any, error) { return "registry", nil })

	got, err := collections.InvokeMethod(collections.New(label("a")), "Shout", "?")
	require.NoError(t, err)
	assert.Equal(t, []any{"A?"}, got.All())
}

func TestInvokeMethodMissing(t *testing.T) {
	_, err := collections.InvokeMethod(scores(), "Bark")
	require.Error(t, err)
	assert.True(t, errors.Is(err, collections.ErrMissingMethod))
	assert.Contains(t, err.Error(), "element alice")
	assert.Contains(t, err.Error(), "Bark")
}

func TestRegistry(t *testing.T) {
	t.Cleanup(collections.FlushMethods)
	assert.False(t, collections.HasMethod("noop"))

	collections.RegisterMethod("noop", func(v any, args ...any) (any, error) { return len(args), nil })
	assert.True(t, collections.HasMethod("noop"))

	res, err := collections.CallMethod("noop", nil, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res)

	collections.FlushMethods()
	_, err = collections.CallMethod("noop", nil)
	assert.ErrorIs(t, err, collections.ErrMissingMethod)
}

func TestZipFunc(t *testing.T) {
	rows := collections.Zip(collections.New[any]("a", "b", "c", "d"), collections.New[any](1, 2, 3)).All()
	require.Len(t, rows, 4)
	assert.Equal(t, "[a 1]", fmt.Sprint(rows[0]))
	assert.Equal(t, "[d <missing>]", fmt.Sprint(rows[3]))
}

func TestFlattenFunc(t *testing.T) {
	nested := collections.New[any](1, []any{2, collections.New[any](3, []int{4})}, 5)
	assert.Equal(t, []any{1, 2, 3, 4, 5}, collections.Flatten(nested).All())

	withMap := collections.New[any](collections.MustOf(map[string]any{"a": 1}), 2)
	flat := collections.Flatten(withMap).All()
	require.Len(t, flat, 2, "mappings are not flattened")
}

func TestIntersectionDifferenceFunc(t *testing.T) {
	assert.Equal(t, []int{2}, collections.Intersection(ints(1, 2, 3), ints(2, 3, 4), ints(2, 5)).All())
	assert.Equal(t, []int{1, 3}, collections.Difference(ints(1, 2, 3, 4), ints(2, 4)).All())
}
