package monitor

import (
	"fmt"
	"math"
	"slices"
)

// ValidReading can only be obtained from Validate.
type ValidReading struct {
	reading Reading
}

func (v ValidReading) Reading() Reading {
	return v.reading
}

func checkBound(field Field, value, lo, hi float64) error {
	if math.IsNaN(value) {
		return &InvalidReadingError{Field: field, Value: value, Bound: lo}
	}
	if value < lo {
		return &InvalidReadingError{Field: field, Value: value, Bound: lo}
	}
	if value > hi {
		return &InvalidReadingError{Field: field, Value: value, Bound: hi}
	}
	return nil
}

// Validate checks voltage, current and power against their inclusive
// bounds, in that order, and reports the first violation.
func Validate(r Reading, t Thresholds) (ValidReading, error) {
	if err := checkBound(FieldVoltage, r.Voltage, t.MinVoltage, t.MaxVoltage); err != nil {
		return ValidReading{}, err
	}
	if err := checkBound(FieldCurrent, r.Current, t.MinCurrent, t.MaxCurrent); err != nil {
		return ValidReading{}, err
	}
	if err := checkBound(FieldPower, r.Power, t.MinPower, t.MaxPower); err != nil {
		return ValidReading{}, err
	}
	return ValidReading{reading: r}, nil
}

type Classification struct {
	Kinds []AlertKind
}

func (c Classification) Has(kind AlertKind) bool {
	return slices.Contains(c.Kinds, kind)
}

func (c Classification) HasFault() bool {
	return slices.ContainsFunc(c.Kinds, AlertKind.IsFault)
}

func (c Classification) Empty() bool {
	return len(c.Kinds) == 0
}

// Classify compares a validated reading against the soft thresholds. All
// comparisons are strict: a value equal to a threshold raises nothing.
// Axes are independent, so several kinds may fire at once.
func Classify(v ValidReading, t Thresholds) Classification {
	r := v.reading
	var kinds []AlertKind

	switch {
	case r.Voltage > t.Overvoltage:
		kinds = append(kinds, AlertOvervoltage)
	case r.Voltage < t.Undervoltage:
		kinds = append(kinds, AlertUndervoltage)
	}

	if t.MaxOperatingCurrent > 0 && r.Current > t.MaxOperatingCurrent {
		kinds = append(kinds, AlertOvercurrent)
	}

	switch {
	case r.Power > t.HighPower:
		kinds = append(kinds, AlertHighPower)
	case r.Power < t.LowPower:
		kinds = append(kinds, AlertLowPower)
	}

	return Classification{Kinds: kinds}
}

func alertMessage(kind AlertKind, r Reading, t Thresholds) string {
	switch kind {
	case AlertOvervoltage:
		return fmt.Sprintf("Voltage %.2f exceeded threshold %.2f", r.Voltage, t.Overvoltage)
	case AlertUndervoltage:
		return fmt.Sprintf("Voltage %.2f below threshold %.2f", r.Voltage, t.Undervoltage)
	case AlertOvercurrent:
		return fmt.Sprintf("Current %.2f exceeded threshold %.2f", r.Current, t.MaxOperatingCurrent)
	case AlertHighPower:
		return fmt.Sprintf("Power %.2f exceeded threshold %.2f", r.Power, t.HighPower)
	case AlertLowPower:
		return fmt.Sprintf("Power %.2f below threshold %.2f", r.Power, t.LowPower)
	}
	return string(kind)
}
