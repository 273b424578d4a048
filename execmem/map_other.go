//go:build unix && !linux

package execmem

import "errors"

func mapDual(string, int, int) (*Region, error) {
	return nil, errors.New("memfd needs linux")
}
