/*
Package domain contains the lifecycle events emitted around a validation pass.

The engine itself is a pure function; these types let the host observe it
(logging, metrics) without coupling the schema package to any of them.

# Key Entities

  - FieldEvent: one variable resolved successfully.
  - ProblemEvent: one variable failed validation.
  - ValidationEvent: summary of a whole pass.
  - LifecycleHooks: optional callbacks receiving the events above.
*/
package domain
