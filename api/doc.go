// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for hioload-spsc: single-producer/single-consumer
// ring buffer interfaces and shared error values. Implementations live
// in internal/concurrency and are re-exported through the spsc package.
package api
