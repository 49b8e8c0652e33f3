// Package token holds the symbol tables mapping human-readable parameter
// names to the driver package's compact numeric encodings and back.
//
// Each parameter domain (VFO, mode, level, function, ...) is one immutable
// Table built from an ordered entry list. Encoding an unknown name fails
// immediately with an UnknownError; decoding an unknown code yields the
// empty string. Tables are process-wide constants and safe for concurrent
// use without synchronization.
package token
