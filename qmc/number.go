// SPDX-License-Identifier: MIT

package qmc

import "reflect"

// Number is the set of integrand value types the integrators accept.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// toComplex widens v for accumulation. Named types fall back to reflection.
func toComplex[T Number](v T) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case float32:
		return complex(float64(x), 0)
	case complex128:
		return x
	case complex64:
		return complex128(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return complex(rv.Float(), 0)
	default:
		return rv.Complex()
	}
}

// fromComplex narrows c to T, dropping the imaginary part for real T.
func fromComplex[T Number](c complex128) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(real(c)).(T)
	case float32:
		return any(float32(real(c))).(T)
	case complex128:
		return any(c).(T)
	case complex64:
		return any(complex64(c)).(T)
	}

	rv := reflect.New(reflect.TypeOf(zero)).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(real(c))
	default:
		rv.SetComplex(c)
	}

	return rv.Interface().(T)
}
