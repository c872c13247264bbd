package exceptions

// Cast finds the first error in err's chain that is a T, walking both
// single and multi unwrapping.
func Cast[T any](err error) (T, bool) {
	var zero T
	if err == nil {
		return zero, false
	}
	for {
		interfaceError, isInterface := err.(T)
		if isInterface {
			return interfaceError, true
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
			if err == nil {
				return zero, false
			}
		case interface{ Unwrap() []error }:
			for _, innerErr := range x.Unwrap() {
				if interfaceError, isInterface = Cast[T](innerErr); isInterface {
					return interfaceError, true
				}
			}
			return zero, false
		default:
			return zero, false
		}
	}
}
