package engine

import (
	stealth "github.com/anatolykoptev/go-stealth"
)

// RandomUserAgent returns a random realistic browser User-Agent string.
func RandomUserAgent() string { return stealth.RandomUserAgent() }
