/*
Package stubkit replaces designated functions with tracked substitutes
during test execution.

A substitute records every invocation and lets the test decide what happens
next: delegate to the original, return fixed or sequential values, fail with
an error, run a replacement implementation, or hand back an already-settled
deferred result.

The pieces live in focused subpackages:

  - spy: the base substitute, its behaviors and inspection queries
  - async: deferred-result behaviors, the one-time queue and the lock rule
  - intercept: swapping substitutes into live members and restoring them
  - call: the immutable per-invocation records
  - behavior: the tagged response strategies and the FIFO once-queue
  - future: settled deferred results

This root package holds only the contract the external assertion layer
consumes: the Substitute interface and the Is predicate. stubkit depends on
a consumer-supplied equality predicate for argument matching and never
implements deep equality, scheduling, or output formatting of its own.
*/
package stubkit
