// Package platform abstracts the few board resources the services
// touch, so everything above it runs unchanged on host and on target.
package platform

// Pull selects the input bias of a GPIO.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is one digital pin. Implementations exist for the RP2 parts
// (over machine) and for host-side tests (FakePin).
type GPIOPin interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Get() bool
	Set(level bool)
	Toggle()
}
