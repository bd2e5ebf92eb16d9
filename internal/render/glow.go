package render

import "koshi-chime.dev/internal/config"

// GlowIntensity maps a rod's remaining highlight frames to [0, 1]:
// 1.0 right after a strike, fading linearly to 0 as the counter decays.
func GlowIntensity(frames int) float64 {
	if frames <= 0 {
		return 0
	}
	if frames >= config.GlowFrames {
		return 1
	}
	return float64(frames) / float64(config.GlowFrames)
}

// glowColor maps glow intensity to the amber ramp. Empty string means
// unlit; the caller falls back to the resting rod style.
func glowColor(intensity float64) string {
	if intensity <= 0 {
		return ""
	}
	if intensity > 0.8 {
		return "#FFE08A"
	}
	if intensity > 0.5 {
		return "#FFC247"
	}
	if intensity > 0.3 {
		return "#E09A2B"
	}
	return "#8A5A1E"
}
