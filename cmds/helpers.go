package cmds

// Var defines name taking one argument. name+"." resets the value.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Hide())

	return &value
}

// Switch defines name to turn on and "!"+name to turn off
func Switch(name string, desc string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines a repeatable name, each occurrence appends one value
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
