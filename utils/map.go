package utils

func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, v := range ts {
		us[i] = f(v)
	}
	return us
}

// Fold combines ts left to right starting from init.
func Fold[T, A any](ts []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range ts {
		acc = f(acc, v)
	}
	return acc
}
