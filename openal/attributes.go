package openal

import (
	"fmt"
	"strings"
)

// ContextAttributes describes the attributes passed to alcCreateContext.
// Nil fields are left to the driver default. The values are hints: OpenAL
// may grant a different number of sources than requested.
type ContextAttributes struct {
	// Frequency is the mixing output buffer frequency in Hz.
	Frequency *int
	// MonoSources is the requested number of mono sources.
	MonoSources *int
	// StereoSources is the requested number of stereo sources.
	StereoSources *int
	// Refresh is the refresh interval in Hz.
	Refresh *int
	// Sync requests a synchronous context.
	Sync *bool
	// Additional holds raw key/value pairs appended after the known attributes.
	Additional []int32
}

// AttributeList returns the zero-terminated ALCint list for alcCreateContext.
// Set attributes are emitted as key/value pairs in the order frequency, mono
// sources, stereo sources, refresh, sync, followed by Additional.
func (a ContextAttributes) AttributeList() []int32 {
	list := make([]int32, 0, 5*2+len(a.Additional)+1)

	add := func(key int32, value *int) {
		if value != nil {
			list = append(list, key, int32(*value))
		}
	}
	add(alcFrequency, a.Frequency)
	add(alcMonoSources, a.MonoSources)
	add(alcStereoSources, a.StereoSources)
	add(alcRefresh, a.Refresh)
	if a.Sync != nil {
		sync := 0
		if *a.Sync {
			sync = 1
		}
		add(alcSync, &sync)
	}

	list = append(list, a.Additional...)
	return append(list, 0)
}

func (a ContextAttributes) String() string {
	parts := []string{
		attributeString("Frequency", a.Frequency),
		attributeString("MonoSources", a.MonoSources),
		attributeString("StereoSources", a.StereoSources),
		attributeString("Refresh", a.Refresh),
		attributeString("Sync", a.Sync),
	}
	for _, v := range a.Additional {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}

func attributeString[T int | bool](name string, value *T) string {
	if value == nil {
		return name + ": N/A"
	}
	if b, ok := any(*value).(bool); ok {
		if b {
			return name + ": True"
		}
		return name + ": False"
	}
	return fmt.Sprintf("%s: %v", name, *value)
}
