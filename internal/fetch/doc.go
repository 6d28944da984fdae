// Package fetch is the HTTP GET capability used to download package lists
// and manifest files. A Response carries the status code and body text; any
// status is returned to the caller, and only transport problems are errors.
package fetch
