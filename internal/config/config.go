package config

import "time"

const (
	// Simulation tick
	TickRate = 50 // Fixed simulation ticks per second (20ms tick)

	// Ball physics (simulation units, unit timestep per tick)
	Gravity  = 0.18  // Tilt-to-acceleration scale per tick
	Friction = 0.965 // Velocity multiplier per tick (<1, exponential decay)
	MaxSpeed = 3.2   // Speed cap; velocity rescaled when exceeded

	// Chamber geometry
	ChamberRadius = 100.0 // Inner radius of the tube
	BallRadius    = 6.0
	WallMargin    = 2.0  // Extra clearance kept from the wall
	WallBounce    = 0.55 // Energy retained after a wall bounce

	// Rods
	RodCount       = 8
	RodRingRadius  = 82.0 // Rod centers sit on this ring
	HitThreshold   = 10.0 // Ball-rod distance that counts as a strike
	DebounceWindow = 80 * time.Millisecond
	GlowFrames     = 15  // Render highlight duration after a strike
	ReboundSpeed   = 1.8 // Speed of the outward kick after a strike
	MinSeparation  = 1e-6

	// Note velocity mapping
	VelocityBase  = 28
	VelocityScale = 30.0
	MaxVelocity   = 127

	// Voice tracking
	NoteDuration = 350 * time.Millisecond // Note-off delay after each strike
	MaxVoices    = 16

	// Sensor
	SmoothingAlpha  = 0.35                   // EMA smoothing factor for tilt samples
	SerialBaud      = 115200                 // Default serial IMU baud rate
	MockInterval    = 20 * time.Millisecond  // Demo source sample period
	BLEScanName     = "koshi-imu"            // Default BLE beacon local name
	SampleStaleness = 500 * time.Millisecond // Last valid sample reused within this window

	// Display
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)

	// App
	AppName    = "KOSHI"
	AppVersion = "1.0"
)
