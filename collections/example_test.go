package collections_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-underbar/collections"
)

func ExampleNew() {
	c := collections.New(1, 2, 3, 4, 5)
	sum := collections.Reduce(c, func(acc, n int, _ collections.Key) int { return acc + n }, 0)
	fmt.Println(c.Count(), sum)
	// Output: 5 15
}

func ExampleFromMap() {
	c := collections.FromMap(map[string]int{"b": 2, "c": 3, "a": 1})
	c.Each(func(v int, k collections.Key, _ *collections.Collection[int]) {
		fmt.Println(k, v)
	})
	// Output:
	// a 1
	// b 2
	// c 3
}

func ExampleOf() {
	_, err := collections.Of(42)
	fmt.Println(err)
	c, _ := collections.Of([]string{"x", "y"})
	fmt.Println(c)
	// Output:
	// arr: invalid argument: int is not a collection
	// ["x","y"]
}

func ExampleCollection_Filter() {
	result := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }).
		All()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleSortByKey() {
	people := collections.MustOf([]any{
		map[string]any{"name": "moe", "age": 40},
		map[string]any{"name": "larry", "age": 50},
		map[string]any{"name": "curly", "age": 60},
		map[string]any{"name": "shemp", "age": 40},
	})
	sorted, _ := collections.SortByKey(people, "age")
	fmt.Println(collections.Pluck(sorted, "name").All())
	// Output: [moe shemp larry curly]
}

func ExampleInvokeMethod() {
	collections.RegisterMethod("upper", func(v any, _ ...any) (any, error) {
		return strings.ToUpper(v.(string)), nil
	})
	defer collections.FlushMethods()

	res, err := collections.InvokeMethod(collections.New("a", "b"), "upper")
	fmt.Println(res.All(), err)
	// Output: [A B] <nil>
}

func ExampleReduceFirst() {
	_, err := collections.ReduceFirst(collections.Empty[int](), func(a, b int, _ collections.Key) int { return a + b })
	fmt.Println(err)
	// Output: collections: operation on empty collection: arr: invalid argument: reduce of empty input with no initial value
}
