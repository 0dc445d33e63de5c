package models

// Header names shared by the names client and server.
const (
	// HeaderTraceID carries a per-request identifier used to correlate
	// client and server log entries.
	HeaderTraceID = "X-Trace-ID"

	HeaderContentType = "Content-Type"
	MIMEJSON          = "application/json"
	MIMEText          = "text/plain; charset=utf-8"
)
