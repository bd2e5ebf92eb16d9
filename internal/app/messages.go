package app

import "time"

// TickMsg drives one fixed simulation step.
type TickMsg time.Time
