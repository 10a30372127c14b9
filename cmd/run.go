package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gochippy/chippy/internal/chip8"
	"github.com/gochippy/chippy/internal/pixel"
	"github.com/spf13/cobra"
)

var (
	cpuHz        int
	windowScale  int
	mute         bool
	amberPalette bool
	beepAsset    string
)

// runCmd runs the chippy virtual machine and blocks until the window closes.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().IntVar(&cpuHz, "cpu-hz", chip8.DefaultCPUHz, "CPU tick rate in Hz (typical range 400-800)")
	runCmd.Flags().IntVar(&windowScale, "scale", 16, "integer pixel scale factor for the window")
	runCmd.Flags().BoolVar(&mute, "mute", false, "disable the beep gate")
	runCmd.Flags().BoolVar(&amberPalette, "amber", false, "use an amber-phosphor palette instead of monochrome")
	runCmd.Flags().StringVar(&beepAsset, "beep-asset", "assets/beep.mp3", "path to the beep tone mp3 asset")
}

func runChippy(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("\nerror reading ROM %q: %v\n", pathToROM, err)
		os.Exit(1)
	}

	vm := chip8.NewVM()
	if err := vm.LoadROM(rom); err != nil {
		fmt.Printf("\nerror loading ROM into the VM: %v\n", err)
		os.Exit(1)
	}

	palette := pixel.DefaultPalette
	if amberPalette {
		palette = pixel.AmberPalette
	}
	win, err := pixel.NewWindow("chippy", windowScale, palette)
	if err != nil {
		fmt.Printf("\nerror creating window: %v\n", err)
		os.Exit(1)
	}

	audioDone := make(chan struct{})
	go func() {
		if err := vm.ManageAudio(beepAsset, mute, audioDone); err != nil {
			fmt.Printf("audio disabled: %v\n", err)
		}
	}()
	defer close(audioDone)

	clock := chip8.NewClockDriver(cpuHz)

	for !win.Closed() {
		win.PollInput(vm)

		if err := clock.Advance(time.Now(), vm); err != nil {
			fmt.Printf("error parsing opcode: %v\n", err)
		}

		if vm.TakeDrawFlag() {
			win.DrawGraphics(vm.Framebuffer())
		} else {
			win.Update()
		}
	}

	fmt.Println("window closed, shutting down...")
}
