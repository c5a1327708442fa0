/*
Package async decorates a base substitute with deferred-result behaviors, a
FIFO one-time queue, and the enqueue lock rule.

# Basic Usage

	s := async.New("fetch")
	s.ResolvesOnce("first").Resolves("default")

	r, _ := s.Result()
	v, _ := r.Await() // "first"
	r, _ = s.Result()
	v, _ = r.Await() // "default", and every call after

One-time behaviors are consumed strictly in enqueue order; once the queue is
empty the default behavior applies. Dequeuing happens synchronously at call
time, so back-to-back calls receive their values in call order no matter
when the returned results are awaited.

# Locking

The value-producing defaults (Returns, Resolves, Rejects) engage a lock:
while locked, every one-time enqueue is silently ignored. CallThrough,
Throws and Calls release the lock and empty the queue; the locking setters
keep queued items so they are still honored before the new default.

# Rejections

Rejected behaviors never fail the call. They settle the returned result
unsuccessfully, record the payload on the call record's Err field, and are
pre-observed so a result nobody awaits never produces background noise.

# Clearing

	s.ClearCalls()        // records only
	s.ClearReturnValues() // queue emptied, default call-through, unlocked
	s.ClearAll()          // both
*/
package async
