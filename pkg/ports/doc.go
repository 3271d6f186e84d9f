/*
Package ports defines the driven ports (interfaces) for the validation engine.

These interfaces decouple the engine from the place raw values come from, so the
same schema can be checked against the process environment, a test fixture, or
a snapshot taken from a remote store.

# Key Interfaces

  - Source: a synchronous key lookup returning a raw string or "absent".
*/
package ports
