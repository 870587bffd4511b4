/*
Package domain contains the core domain models of the Turing machine simulator.

It defines the immutable machine definition (states, alphabets, transition table), the execution
modes and the result values produced by the engine. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Definition: The validated, read-only description of a machine.
  - Key / Action: One entry of the partial transition function.
  - Mode: Recognizer (accept/reject) or Transducer (tape output).
  - Result: What a single run produced and why it halted.
*/
package domain
