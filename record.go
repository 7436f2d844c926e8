package mozlog

// EnvVersion is the MozLog envelope version this package emits.
const EnvVersion = "2.0"

// Record is one MozLog output line. See
// https://wiki.mozilla.org/Firefox/Services/Logging for the format.
type Record struct {
	// Timestamp is nanoseconds since the UNIX epoch, UTC.
	Timestamp int64 `json:"Timestamp"`

	// Type names the schema of the record's fields, e.g. "request.summary".
	Type string `json:"Type"`

	// Logger is the data source, the service doing the logging.
	Logger string `json:"Logger"`

	// Hostname of the machine that generated the record.
	Hostname string `json:"Hostname"`

	// EnvVersion is the envelope (log format) version.
	EnvVersion string `json:"EnvVersion"`

	// Pid of the process that generated the record.
	Pid uint32 `json:"Pid"`

	// Severity is the syslog severity derived from the event's level.
	Severity uint32 `json:"Severity"`

	// Fields holds the merged event and span fields, always including
	// "spans".
	Fields Fields `json:"Fields"`
}
