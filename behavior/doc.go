/*
Package behavior models what a substitute does when it is called.

A Behavior is a tagged variant carrying only the data its strategy needs: a
value tuple, an error, or a replacement function. A substitute holds one
default Behavior at a time plus a Queue of one-time behaviors that are
consumed front-first before the default applies.

The two sequential forms intentionally disagree on exhaustion. The legacy
Sequence default repeats its final value forever; the one-time Queue empties
and falls through to the default. Both contracts are documented where they
are declared and must not be silently unified.
*/
package behavior
