// Package responsewriter provides a wrapper around http.ResponseWriter that
// records the response status code and the number of bytes written, for use
// by logging and metrics middleware.
package responsewriter

import "net/http"

// Recorder wraps http.ResponseWriter and records response metadata.
type Recorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

// Wrap wraps the given ResponseWriter in a Recorder.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the status code and forwards to the underlying writer.
func (r *Recorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.statusCode = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

// Write records the number of bytes written and forwards to the underlying writer.
func (r *Recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded status code.
func (r *Recorder) StatusCode() int { return r.statusCode }

// BytesWritten returns the number of response body bytes written.
func (r *Recorder) BytesWritten() int { return r.bytesWritten }
