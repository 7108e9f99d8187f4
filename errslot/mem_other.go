// SPDX-License-Identifier: MIT

//go:build !unix

package errslot

// allocRecord places the record on the Go heap.
func allocRecord() (*record, func()) {
	return new(record), nil
}
