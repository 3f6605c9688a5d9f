package config

// Pointer helpers for building configs programmatically (tests, defaults).

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Strings returns a pointer to ss.
func Strings(ss ...string) *[]string { return &ss }
