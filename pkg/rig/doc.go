// Package rig exposes a rig through symbolic, validated, serialized
// operations on top of a blocking driver backend.
//
// A Rig owns exactly one driver handle and a single worker goroutine. Every
// operation that touches the device is validated and encoded on the caller's
// goroutine, then dispatched to the worker, which executes driver calls
// strictly one at a time. The caller blocks on the operation's completion;
// the supplied context bounds only that wait, never the driver call itself,
// which always runs to completion once dispatched.
//
// Lifecycle: New creates the handle (Closed), Open and Close move between
// Open and Closed any number of times, Destroy releases the native handle
// and is terminal. Every operation after Destroy fails with a StateError;
// nothing ever dereferences a released handle.
//
// Capability listings and ConnectionInfo are metadata queries over immutable
// state and run synchronously on the caller's goroutine.
package rig
