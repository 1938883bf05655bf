package component

import (
	"fmt"
	"strings"
)

// Platform identifies the target microcontroller family.
type Platform string

const (
	PlatformESP32   Platform = "ESP32"
	PlatformESP8266 Platform = "ESP8266"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformESP32, PlatformESP8266}

// ParsePlatform accepts a platform name in any letter case.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q, expected one of %s", s, strings.Join(platformNames(), ", "))
}

func (p Platform) String() string { return string(p) }

func platformNames() []string {
	names := make([]string, len(Platforms))
	for i, p := range Platforms {
		names[i] = string(p)
	}
	return names
}
