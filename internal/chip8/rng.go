package chip8

import "time"

// defaultSeed seeds the VM's random source from the wall clock. Tests that
// need determinism construct a VM and reseed its source with SeedRandom
// instead of relying on this.
func defaultSeed() int64 {
	return time.Now().UnixNano()
}

// SeedRandom reseeds the VM's random source, used by Cxkk. Exposed so tests
// can make CHIP-8 programs that rely on randomness deterministic.
func (vm *VM) SeedRandom(seed int64) {
	vm.rng.Seed(seed)
}
