package arr

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Invoke calls fn with each element as its receiver argument, followed by
// args, and returns the results in input order.
func Invoke[T, R any](items []T, fn func(T, ...any) R, args ...any) []R {
	return Map(items, func(item T, _ int) R { return fn(item, args...) })
}

// InvokeMethod calls the method called name on each element with args and
// returns the results in input order. See [Apply] for how a single call is
// resolved and how its results are returned. The first failing element stops
// the iteration.
func InvokeMethod[T any](items []T, name string, args ...any) ([]any, error) {
	out := make([]any, 0, len(items))
	for i, item := range items {
		res, err := Apply(item, name, args...)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// Apply calls the method called name on receiver with args.
//
// Arguments must be assignable to the method's parameters; numeric
// arguments are converted between numeric kinds. A trailing error result is
// returned as the error; of the remaining results none yields nil, one yields
// that value and several yield a []any.
//
// A receiver without the method returns [ErrMissingMethod]; arguments that
// do not fit the signature return [ErrInvalidArgument].
func Apply(receiver any, name string, args ...any) (any, error) {
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on <nil>", ErrMissingMethod, name)
	}
	method := rv.MethodByName(name)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %q on %T (%v)", ErrMissingMethod, name, receiver, receiver)
	}

	in, err := methodArgs(method.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%q on %T: %w", name, receiver, err)
	}
	return methodResults(method.Call(in))
}

func methodArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrInvalidArgument, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArgument, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = mt.In(i)
		} else {
			want = mt.In(fixed).Elem()
		}
		v, err := coerceArg(arg, want)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

func coerceArg(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not a %s", ErrInvalidArgument, want)
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(want.Kind()) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %T is not a %s", ErrInvalidArgument, arg, want)
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func methodResults(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		res := make([]any, len(out))
		for i, v := range out {
			res[i] = v.Interface()
		}
		return res, err
	}
}
