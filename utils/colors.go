package utils

// Embed accent colors shared across handlers.
const (
	ColorAccent  = 0x4287F5
	ColorSuccess = 0x2ECC71
	ColorWarn    = 0xE67E22
	ColorError   = 0xE74C3C
	ColorGold    = 0xF1C40F
)
