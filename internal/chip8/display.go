package chip8

// drawSprite XORs an n-byte sprite stored at I onto the framebuffer at
// (vx, vy). Coordinates wrap individually at the grid edges rather than
// clipping: (x+c) mod 64, (y+r) mod 32. VF is cleared before the blit and
// set to 1 if any previously-on pixel is turned off.
func (vm *VM) drawSprite(vx, vy, height byte) {
	vm.v[0xF] = 0

	for row := byte(0); row < height; row++ {
		spriteRow := vm.memory[(vm.i+uint16(row))&0x0FFF]
		py := (int(vy) + int(row)) % DisplayHeight

		for col := byte(0); col < 8; col++ {
			if spriteRow&(0x80>>col) == 0 {
				continue
			}
			px := (int(vx) + int(col)) % DisplayWidth
			idx := py*DisplayWidth + px

			if vm.gfx[idx] == 1 {
				vm.v[0xF] = 1
			}
			vm.gfx[idx] ^= 1
		}
	}

	vm.drawFlag = true
}
