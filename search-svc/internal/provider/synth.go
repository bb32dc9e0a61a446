package provider

import (
	"hash/fnv"
	"strings"
)

// SynthesizeRating derives a stable rating in [4.0, 5.0) from the restaurant name.
func SynthesizeRating(name string) float64 {
	return 4.0 + float64(nameHash(name)%10)/10
}

// SynthesizePrice derives a stable price tier of one to three "$" from the restaurant name.
func SynthesizePrice(name string) string {
	return strings.Repeat("$", 1+int(nameHash(name)/10%3))
}

func nameHash(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}
