//go:build !windows

package winmsg

import "github.com/frudas24/winsim/internal/winerr"

// NewSystemPoster is unavailable outside Windows.
func NewSystemPoster(opts Options) (*Poster, error) {
	return nil, winerr.ErrUnsupported
}
