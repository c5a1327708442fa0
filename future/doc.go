/*
Package future provides the settled deferred results produced by
asynchronous substitute behaviors.

A Result stands in for a success or failure the caller may inspect later.
Results handed out by a substitute are always settled at creation time, so
Await returns immediately and no goroutines are involved.

Rejections are deliberately quiet. Awaiting a rejected Result returns the
configured error; a rejected Result that is dropped without being observed
only emits a debug diagnostic through the logger installed with SetLogger,
and substitutes pre-observe the rejections they create so scripted failures
never show up as background noise.
*/
package future
