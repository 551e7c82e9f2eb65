//go:build !windows

package monitor

import "github.com/frudas24/winsim/internal/winerr"

// ListMonitors returns an error on non-Windows platforms.
func ListMonitors() ([]Monitor, error) {
	return nil, winerr.ErrUnsupported
}
