// Package chip8 is a CHIP-8 virtual machine. CHIP-8 used to be implemented on
// 4k systems like the Telmac 1800 and Cosmac VIP, where the interpreter
// itself occupied the first 512 bytes of memory (up to 0x200). In modern
// implementations like this one, where the interpreter runs natively outside
// the 4K memory space, there is no need to avoid the lower bytes, and it is
// common to store font data there instead.
package chip8

import "math/rand"

//		System memory map
// 		+---------------+= 0xFFF (4095) End Chip-8 RAM
// 		|               |
// 		| 0x200 to 0xFFF|
// 		|     Chip-8    |
// 		| Program / Data|
// 		|     Space     |
// 		|               |
// 		+---------------+= 0x200 (512) Start of most Chip-8 programs
// 		| 0x000 to 0x1FF|
// 		| Reserved for  |
// 		|  interpreter  |
// 		+---------------+= 0x000 (0) Begin Chip-8 RAM. Font data lives here.
//

const (
	// MemorySize is the total addressable memory.
	MemorySize = 4096
	// NumRegisters is the count of general-purpose Vx registers.
	NumRegisters = 16
	// StackSize is the number of nested CALL return addresses supported.
	StackSize = 16
	// DisplayWidth is the framebuffer width in pixels.
	DisplayWidth = 64
	// DisplayHeight is the framebuffer height in pixels.
	DisplayHeight = 32
	// NumKeys is the size of the hex keypad.
	NumKeys = 16
	// ProgramStart is the memory address at which ROMs are loaded.
	ProgramStart = 0x200

	maxROMSize = MemorySize - ProgramStart
)

// VM represents the chip-8 virtual machine: memory, registers, stack,
// keypad, framebuffer, and timers. A VM is created once, reset, has a ROM
// loaded, and is then driven one Step at a time by a ClockDriver.
type VM struct {
	// Chip-8 system memory, see memory map above.
	memory [MemorySize]byte

	// 8-bit general purpose registers, V0-VF. VF doubles as a flag
	// register for carry/borrow/shift/collision results.
	v [NumRegisters]byte

	// Index register (only the low 12 bits are meaningful for addressing).
	i uint16

	// Program counter.
	pc uint16

	// Internal stack of return addresses pushed by CALL.
	stack [StackSize]uint16

	// Stack pointer, 0...StackSize.
	sp byte

	// 8-bit down-counters, ticked at 60Hz by a ClockDriver.
	delay byte
	sound byte

	// Represents window pixels; bytes get flipped on and off by Dxyn.
	gfx [DisplayWidth * DisplayHeight]byte

	// Set by instructions that mutate gfx, cleared when a frame is taken.
	drawFlag bool

	// Keypad is hex based, 0x0-0xF. See internal/pixel for the host key
	// mapping.
	keys [NumKeys]bool

	// Fx0A blocking-wait state: waitingForKey stalls Step() until a fresh
	// press-then-release cycle is observed on the pad.
	waitingForKey bool
	waitRegister  byte
	keyLatched    bool
	latchedKey    byte

	rng *rand.Rand
}

// NewVM returns a freshly reset VM with its own random source.
func NewVM() *VM {
	vm := &VM{rng: rand.New(rand.NewSource(defaultSeed()))}
	vm.Reset()
	return vm
}

// Reset zeroes memory, registers, stack, framebuffer, timers, and keypad
// state, re-installs the font set, and sets PC to the program entry point.
// It does not touch the random source.
func (vm *VM) Reset() {
	vm.memory = [MemorySize]byte{}
	vm.v = [NumRegisters]byte{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.stack = [StackSize]uint16{}
	vm.sp = 0
	vm.delay = 0
	vm.sound = 0
	vm.gfx = [DisplayWidth * DisplayHeight]byte{}
	vm.drawFlag = false
	vm.keys = [NumKeys]bool{}
	vm.waitingForKey = false
	vm.waitRegister = 0
	vm.keyLatched = false
	vm.latchedKey = 0

	copy(vm.memory[:len(fontSet)], fontSet[:])
}

// LoadROM copies rom into memory starting at ProgramStart. It fails with
// ErrROMTooLarge if rom would overrun memory.
func (vm *VM) LoadROM(rom []byte) error {
	if len(rom) > maxROMSize {
		return ErrROMTooLarge
	}
	copy(vm.memory[ProgramStart:], rom)
	return nil
}

// Framebuffer returns a copy of the current 64x32 pixel grid.
func (vm *VM) Framebuffer() [DisplayWidth * DisplayHeight]byte {
	return vm.gfx
}

// TakeDrawFlag reports whether the framebuffer changed since the last call
// and clears the flag.
func (vm *VM) TakeDrawFlag() bool {
	f := vm.drawFlag
	vm.drawFlag = false
	return f
}

// BeepOn reports whether the sound timer is currently non-zero.
func (vm *VM) BeepOn() bool {
	return vm.sound > 0
}

// SetKey updates the pressed/released state of a pad key and, if Fx0A is
// currently stalling Step(), advances the blocking-wait state machine: the
// first press latches the key into the waiting register, and the matching
// release then lets Step() resume.
func (vm *VM) SetKey(key byte, down bool) {
	if key >= NumKeys {
		return
	}
	vm.keys[key] = down

	if !vm.waitingForKey {
		return
	}
	if !vm.keyLatched {
		if down {
			vm.v[vm.waitRegister] = key
			vm.keyLatched = true
			vm.latchedKey = key
		}
		return
	}
	if key == vm.latchedKey && !down {
		vm.waitingForKey = false
		vm.keyLatched = false
		vm.pc += 2
	}
}

// tickTimers decrements the delay and sound timers, called at 60Hz by a
// ClockDriver.
func (vm *VM) tickTimers() {
	if vm.delay > 0 {
		vm.delay--
	}
	if vm.sound > 0 {
		vm.sound--
	}
}
