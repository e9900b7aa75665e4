package ptr

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for the empty string so JSON renders null.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value pointed to by p if it's not nil, otherwise returns fallback
func Deref[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
