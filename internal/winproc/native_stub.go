//go:build !windows

package winproc

import "github.com/frudas24/winsim/internal/winerr"

// NewSystem is unavailable outside Windows.
func NewSystem() (*Host, error) {
	return nil, winerr.ErrUnsupported
}
