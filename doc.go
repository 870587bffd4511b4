/*
Package turing is a single-tape deterministic Turing machine simulator designed to be embedded in CLIs, services and AI agent tooling.

A machine definition is parsed once into an immutable domain.Definition and then run against any number of inputs in one of two modes:

  - Recognizer: the machine runs until no transition applies; the input is accepted if it stops in a final state and rejected otherwise.
  - Transducer: the machine also stops as soon as a step enters a final state; the output is the tape content from the head rightwards.

# Tape

The tape is materialized on demand. Reading a cell that was never written yields the blank symbol without growing the tape.
Writing one cell past the right end appends a cell. Writing left of the first cell inserts at the front and moves the head back to index 0,
so a machine that keeps moving left piles symbols up at the front instead of extending into negative positions.

# Termination

Runs are unbounded by default: a machine that never halts blocks the caller until its context is canceled.
Use WithStepLimit to turn such runs into a domain.StepLimitError, which is never reported as accept or reject.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/turing"
	)

	func main() {
		eng, err := turing.Load("examples/parity/machine.tm")
		if err != nil {
			log.Fatal(err)
		}

		verdict, err := eng.Recognize(context.Background(), "110")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(verdict) // accept
	}

Batches in the input file format (mode on the first line, one input per following line) are handled by Runner.
*/
package turing
