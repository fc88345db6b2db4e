// Package uciflag implements the flag schema for UCI command arguments,
// which are whitespace-separated tokens rather than the "-name value"
// shape stdlib flag expects.
package uciflag

import "fmt"

// NewSchema initializes a new flag Schema.
func NewSchema() Schema {
	return Schema{flags: make(map[string]Flag)}
}

// Schema contains the flag schema for a command.
type Schema struct {
	flags map[string]Flag
}

// Parse parses args according to the schema, returning the collected
// Values or the first error encountered.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	for len(args) > 0 {
		name := args[0]

		collect, isFlag := s.flags[name]
		if !isFlag {
			return values, fmt.Errorf("parse flags: unknown flag %q", name)
		}
		if values[name].Set {
			return values, fmt.Errorf("parse flags: flag %q already set", name)
		}

		value, rest, err := collect(args[1:])
		if err != nil {
			return values, err
		}

		args = rest
		values[name] = Value{Set: true, Value: value}
	}

	return values, nil
}

// Button adds a flag with no argument: it is either present or absent.
func (s Schema) Button(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return nil, args, nil
	}
}

// Single adds a flag taking exactly one string argument.
func (s Schema) Single(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) == 0 {
			return nil, nil, argNumErr(name, 1, 0)
		}
		return args[0], args[1:], nil
	}
}

// Array adds a flag taking exactly n string arguments.
func (s Schema) Array(name string, n int) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) < n {
			return nil, nil, argNumErr(name, n, len(args))
		}
		value := make([]string, n)
		copy(value, args[:n])
		return value, args[n:], nil
	}
}

// Variadic adds a flag that collects every remaining argument.
func (s Schema) Variadic(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return args, nil, nil
	}
}

// Flag collects its arguments from the front of args, returning its
// value and whatever args remain.
type Flag func(args []string) (value any, rest []string, err error)

// Values maps a flag's name to its collected Value.
type Values map[string]Value

// Value is the result of collecting one flag.
type Value struct {
	Set   bool
	Value any
}

func argNumErr(flag string, expected, collected int) error {
	return fmt.Errorf("flag %s: expected %d args, collected %d", flag, expected, collected)
}
