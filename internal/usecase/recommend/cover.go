package recommend

import "hash/fnv"

// coverRotation is a fixed set of placeholder cover images. Covers
// are cosmetic: the choice is deterministic per title via FNV-1a,
// but not part of the ranking contract.
var coverRotation = [...]string{
	"https://images.pexels.com/photos/1130980/pexels-photo-1130980.jpeg?auto=compress&cs=tinysrgb&w=300&h=400&fit=crop",
	"https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=300&h=400&fit=crop",
	"https://images.pexels.com/photos/1130641/pexels-photo-1130641.jpeg?auto=compress&cs=tinysrgb&w=300&h=400&fit=crop",
	"https://images.pexels.com/photos/1130623/pexels-photo-1130623.jpeg?auto=compress&cs=tinysrgb&w=300&h=400&fit=crop",
}

func coverFor(title string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return coverRotation[h.Sum32()%uint32(len(coverRotation))]
}
