package utils

// Default v为零值时回退到d 用于flag没传时取配置值
func Default[T int | string](v, d T) T {
	if !isZero(v) {
		return v
	}
	return d
}

func isZero[T comparable](v T) bool {
	var zero T
	return v == zero
}
