//go:build !unix

package execmem

import "errors"

var errUnsupported = errors.New("execmem: no mmap on this platform")

func mapDual(string, int, int) (*Region, error) { return nil, errUnsupported }
func mapSingle(int, int) (*Region, error)       { return nil, errUnsupported }
func protect([]byte, bool) error                { return errUnsupported }
func unmap(*Region) error                       { return errUnsupported }
