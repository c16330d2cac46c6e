package monitor

import (
	"errors"
	"fmt"
)

var (
	// ErrSensorUnavailable is returned by reading sources when no sample
	// could be taken. A monitor never sees such a cycle.
	ErrSensorUnavailable = errors.New("sensor unavailable")

	// ErrRelayLatched rejects switching the relay on while a fault latch is
	// held. Only Reset clears it.
	ErrRelayLatched = errors.New("relay latched off by fault, reset required")
)

type Field string

const (
	FieldVoltage Field = "voltage"
	FieldCurrent Field = "current"
	FieldPower   Field = "power"
)

// InvalidReadingError reports a reading field outside its physical bounds.
// Bound is the violated limit.
type InvalidReadingError struct {
	Field Field
	Value float64
	Bound float64
}

func (e *InvalidReadingError) Error() string {
	if e.Value < e.Bound {
		return fmt.Sprintf("invalid reading: %s %.2f below minimum %.2f", e.Field, e.Value, e.Bound)
	}
	if e.Value > e.Bound {
		return fmt.Sprintf("invalid reading: %s %.2f above maximum %.2f", e.Field, e.Value, e.Bound)
	}
	return fmt.Sprintf("invalid reading: %s %v not comparable to bound %.2f", e.Field, e.Value, e.Bound)
}

// ConfigurationError is fatal at startup: monitoring must not begin with an
// inconsistent threshold set.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
