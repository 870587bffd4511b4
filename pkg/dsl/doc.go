/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing machine definitions.

It allows developers to define Turing machines using a type-safe, fluent builder pattern
instead of relying on the line format or YAML files. This is particularly useful for generated
machines, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/turing/pkg/dsl"
	)

	func main() {
		b := dsl.New().Blank("_").Input("0", "1")

		b.State("q0").Initial().
			On("0").Right().Go("q1").
			On("1").Right().Go("q0")

		b.State("q1").Final()

		// The resulting definition can be passed to turing.New(...)
		def, err := b.Build()
		// ...
	}

Unlike the parsers, Build runs the strict validator, so a builder never yields a machine
that references undeclared states or symbols.
*/
package dsl
