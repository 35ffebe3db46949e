package types

import (
	"fmt"
	"time"
)

// DefaultTimeoutWindow is how long an inactive player has to answer a timeout.
const DefaultTimeoutWindow = 10 * time.Minute

// Params defines the tttchannel module configuration.
type Params struct {
	TimeoutWindow time.Duration `json:"timeout_window" yaml:"timeout_window"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		TimeoutWindow: DefaultTimeoutWindow,
	}
}

// Validate checks param bounds.
func (p Params) Validate() error {
	if p.TimeoutWindow <= 0 {
		return fmt.Errorf("timeout_window must be positive, got %s", p.TimeoutWindow)
	}
	return nil
}
