package collections

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hasbyte1/go-underbar/arr"
)

// MethodFunc is a named operation callable through [InvokeMethod] on values
// that do not define a Go method of that name. The element is passed as
// receiver; type-assert inside the function.
type MethodFunc func(receiver any, args ...any) (any, error)

// methodRegistry is the package-level, goroutine-safe method store.
var methodRegistry struct {
	mu      sync.RWMutex
	methods map[string]MethodFunc
}

func init() {
	methodRegistry.methods = make(map[string]MethodFunc)
}

// RegisterMethod adds a named operation to the global registry, replacing
// any previous registration under that name. Safe to call from multiple
// goroutines.
//
//	collections.RegisterMethod("double", func(v any, _ ...any) (any, error) {
//	    n, ok := v.(int)
//	    if !ok {
//	        return nil, fmt.Errorf("double: %T is not an int", v)
//	    }
//	    return n * 2, nil
//	})
//
//	res, _ := collections.InvokeMethod(collections.New(1, 2), "double") // [2 4]
func RegisterMethod(name string, fn MethodFunc) {
	methodRegistry.mu.Lock()
	defer methodRegistry.mu.Unlock()
	methodRegistry.methods[name] = fn
}

// HasMethod reports whether a method with the given name is registered.
func HasMethod(name string) bool {
	_, ok := lookupMethod(name)
	return ok
}

// FlushMethods removes all registered methods.
// Intended for use in tests.
func FlushMethods() {
	methodRegistry.mu.Lock()
	defer methodRegistry.mu.Unlock()
	methodRegistry.methods = make(map[string]MethodFunc)
}

// CallMethod calls the registered method name with receiver and args.
// An unregistered name returns [ErrMissingMethod].
func CallMethod(name string, receiver any, args ...any) (any, error) {
	fn, ok := lookupMethod(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrMissingMethod, name)
	}
	return fn(receiver, args...)
}

func lookupMethod(name string) (MethodFunc, bool) {
	methodRegistry.mu.RLock()
	defer methodRegistry.mu.RUnlock()
	fn, ok := methodRegistry.methods[name]
	return fn, ok
}

// callNamed resolves name against the receiver's Go methods and falls back
// to the registry.
func callNamed(receiver any, name string, args []any) (any, error) {
	res, err := arr.Apply(receiver, name, args...)
	if !errors.Is(err, ErrMissingMethod) {
		return res, err
	}
	fn, ok := lookupMethod(name)
	if !ok {
		return nil, err
	}
	return fn(receiver, args...)
}
