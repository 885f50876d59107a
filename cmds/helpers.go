package cmds

import "strings"

// Var defines name to set a value and "name." to reset it to zero. The
// optional description parts are joined for usage.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")).Args("VALUE"))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn a flag on and "!name" to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Collect defines name to append a value, for repeatable flags, and
// "name." to clear the collected values.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T

	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")).Args("VALUE"))

	// clear
	Define(name+".", Func(func() {
		value = nil
	}).Desc("clear "+name))

	return &value
}
