package repository

// Decode helpers for document fields. Backends may hand back []any for
// stored string slices, so both shapes are accepted.

func docString(v any) string {
	s, _ := v.(string)
	return s
}

func docStringPtr(v any) *string {
	switch t := v.(type) {
	case string:
		return &t
	case *string:
		return t
	default:
		return nil
	}
}

func docStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
