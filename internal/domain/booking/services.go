package booking

import (
	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/clock"
)

type Services struct {
	Clock  clock.Clock
	Window availability.Window
}
