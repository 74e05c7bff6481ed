package common

import "time"

// Clock abstracts wall-clock reads so the staleness gate and quarantine
// window can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}
