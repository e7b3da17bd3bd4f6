// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/trustnet/service"
)

// ErrBadLevel indicates a trust level outside [-1,1].
var ErrBadLevel = errors.New("network: trust level must be in [-1,1]")

// Trust is the label of a trust edge: how much the source trusts the
// destination for one service.
type Trust struct {
	Service service.Service
	Level   float64
}

// NewTrust validates the level range.
func NewTrust(s service.Service, level float64) (Trust, error) {
	if math.IsNaN(level) || level < -1 || level > 1 {
		return Trust{}, fmt.Errorf("%w: got %v", ErrBadLevel, level)
	}

	return Trust{Service: s, Level: level}, nil
}

// Label renders the trust as "S03(+0.812)".
func (t Trust) Label() string {
	return fmt.Sprintf("%s(%+.3f)", t.Service.Name(), t.Level)
}

// String implements fmt.Stringer.
func (t Trust) String() string { return t.Label() }

// Edge is a trust edge as seen by readers of a Graph.
type Edge struct {
	ID    string
	From  string
	To    string
	Trust Trust
}
