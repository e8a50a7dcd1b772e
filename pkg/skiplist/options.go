package skiplist

import "math/rand"

type Options struct {
	// Seed of the tower height generator, 0 means seeded from the clock.
	Seed int64

	// Rand takes precedence over Seed when set.
	// It is owned by the index afterwards and must not be shared.
	Rand *rand.Rand
}

var DefaultOptions = Options{
	Seed: 0,
	Rand: nil,
}
