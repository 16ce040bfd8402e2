package utils

func PtrUint64(v uint64) *uint64 {
	return &v
}

func PtrString(v string) *string {
	return &v
}

// FirstNonEmpty returns the first argument that is not the empty string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
