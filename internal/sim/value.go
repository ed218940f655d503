package sim

// Value is a tagged stack cell: either a signed integer or a string. Strings
// double as variable names and jump-target names, matching the program
// source's namespace (see lang.Program).
type Value struct {
	isString bool
	i        int64
	s        string
}

// IntValue wraps an integer as a Value.
func IntValue(i int64) Value { return Value{i: i} }

// StringValue wraps a string as a Value.
func StringValue(s string) Value { return Value{isString: true, s: s} }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.isString }

// Int returns the integer payload; valid only when !IsString().
func (v Value) Int() int64 { return v.i }

// Str returns the string payload; valid only when IsString().
func (v Value) Str() string { return v.s }

// Truthy reports whether v is considered true by JUMPIF/CALLIF/IFELSE: a
// non-zero integer or a non-empty string.
func (v Value) Truthy() bool {
	if v.isString {
		return v.s != ""
	}
	return v.i != 0
}
