package helpers

// NullString copies s into a fresh pointer for optional text columns.
// Empty strings stay empty rather than becoming nil; the columns carry
// NOT NULL DEFAULT '' and partial updates must distinguish "absent"
// (nil request field) from "set to empty".
func NullString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to s, or nil when s is empty. Used when
// mapping optional request fields onto nullable columns.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
