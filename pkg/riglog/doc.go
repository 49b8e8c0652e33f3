// Package riglog records rig control events: dispatched driver calls with
// their latency and outcome, and handle state transitions.
//
// Events flow through the Logger interface to pluggable sinks. FileLogger
// persists events as compact integer-keyed CBOR records that Reader can
// play back; SlogAdapter mirrors events to a standard slog.Logger for
// development; MultiLogger fans out to several sinks at once.
package riglog
