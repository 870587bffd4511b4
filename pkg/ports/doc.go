/*
Package ports defines the driven ports (interfaces) of the Turing machine simulator.

These interfaces decouple the core logic from external implementations, allowing
adapters (HTTP, MCP) and caches (memory, Redis) to be swapped freely.

# Key Interfaces

  - Engine: What adapters need from a loaded machine.
  - ResultCache: Stores halted results keyed by definition, mode and input.
*/
package ports
