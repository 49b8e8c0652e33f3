package driver

// Status is the result code of a driver call. Zero means success; failures
// are negative, mirroring the conventional rig control C API so codes can be
// passed through network daemons unchanged.
type Status int

const (
	// StatusOK indicates the call completed successfully.
	StatusOK Status = 0

	// StatusInvalidParam indicates a parameter was rejected by the backend.
	StatusInvalidParam Status = -1

	// StatusInvalidConfig indicates an invalid configuration entry.
	StatusInvalidConfig Status = -2

	// StatusNoMemory indicates backend memory exhaustion.
	StatusNoMemory Status = -3

	// StatusNotImplemented indicates the backend does not implement the call.
	StatusNotImplemented Status = -4

	// StatusTimeout indicates the device did not answer within the I/O timeout.
	StatusTimeout Status = -5

	// StatusIO indicates a transport-level I/O failure.
	StatusIO Status = -6

	// StatusInternal indicates an internal backend fault.
	StatusInternal Status = -7

	// StatusProtocol indicates the device answered with a malformed response.
	StatusProtocol Status = -8

	// StatusRejected indicates the device refused the command.
	StatusRejected Status = -9

	// StatusTruncated indicates an argument was truncated by the device.
	StatusTruncated Status = -10

	// StatusNotAvailable indicates the function is not available on this model.
	StatusNotAvailable Status = -11

	// StatusTargetable indicates the target VFO is not addressable directly.
	StatusTargetable Status = -12

	// StatusBusError indicates a collision on the control bus.
	StatusBusError Status = -13

	// StatusBusBusy indicates the control bus did not become free in time.
	StatusBusBusy Status = -14

	// StatusInvalidArg indicates an invalid argument at the API boundary.
	StatusInvalidArg Status = -15

	// StatusInvalidVFO indicates the VFO is invalid for this operation.
	StatusInvalidVFO Status = -16

	// StatusDomain indicates a value outside the device's accepted domain.
	StatusDomain Status = -17
)

// statusText maps status codes to human-readable driver error text.
var statusText = map[Status]string{
	StatusOK:             "Command completed successfully",
	StatusInvalidParam:   "Invalid parameter",
	StatusInvalidConfig:  "Invalid configuration",
	StatusNoMemory:       "Memory shortage",
	StatusNotImplemented: "Feature not implemented",
	StatusTimeout:        "Communication timed out",
	StatusIO:             "IO error",
	StatusInternal:       "Internal error",
	StatusProtocol:       "Protocol error",
	StatusRejected:       "Command rejected by the rig",
	StatusTruncated:      "Command performed, but arg truncated",
	StatusNotAvailable:   "Feature not available",
	StatusTargetable:     "Target VFO unaccessible",
	StatusBusError:       "Communication bus error",
	StatusBusBusy:        "Communication bus collision",
	StatusInvalidArg:     "Invalid argument",
	StatusInvalidVFO:     "Invalid VFO",
	StatusDomain:         "Argument out of domain of rig",
}

// StrError returns the human-readable error text for a status code.
func StrError(s Status) string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return "Unknown status code"
}

// IsOK returns true if the status indicates success.
func (s Status) IsOK() bool {
	return s == StatusOK
}

// IsUnsupported returns true if the status means the operation is not
// provided by the backend, as opposed to having failed.
func (s Status) IsUnsupported() bool {
	return s == StatusNotImplemented || s == StatusNotAvailable
}

// String returns the error text for the status.
func (s Status) String() string {
	return StrError(s)
}
