package enums

// Enum is implemented by every literal enumeration in this package.
type Enum interface {
	IsValid() bool
	Options() []string
}

func optionsOf[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
