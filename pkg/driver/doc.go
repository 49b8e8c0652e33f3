// Package driver defines the contract between the rig control layer and a
// concrete rig backend.
//
// A Driver is a synchronous, blocking call surface: every method performs
// real device I/O (or simulates it) and returns a Status code, with outputs
// delivered as ordinary return values. Drivers never spawn goroutines on
// behalf of the caller and never retry; serialization and asynchrony are
// owned entirely by the rig layer above.
//
// The package also defines the compact numeric encodings shared by all
// backends (VFOs, modes, levels, functions, and so on) and the static
// capability descriptor a backend publishes for its model. The string names
// for these encodings live in the token package.
package driver
