package sanitizer

// Transform rewrites a string. Every helper in this package with the shape
// func(string) string is a Transform.
type Transform func(string) string

// Apply runs s through transforms left to right. Nil transforms are skipped.
func Apply(s string, transforms ...Transform) string {
	for _, t := range transforms {
		if t != nil {
			s = t(s)
		}
	}
	return s
}

// Chain bundles transforms into one reusable Transform.
func Chain(transforms ...Transform) Transform {
	return func(s string) string {
		return Apply(s, transforms...)
	}
}

// When returns t if cond holds and nil otherwise, for optional pipeline steps.
func When(cond bool, t Transform) Transform {
	if !cond {
		return nil
	}
	return t
}

// Escaper returns EscapeHTML, preceded by NormalizeText when normalize is set.
func Escaper(normalize bool) Transform {
	return Chain(When(normalize, NormalizeText), EscapeHTML)
}
