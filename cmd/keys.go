package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keysCmd prints the fixed physical-key to pad-key mapping, so a player
// doesn't have to read source to learn it.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "print the keyboard to CHIP-8 keypad mapping",
	Long:  "Run `chippy keys` to see which physical keys drive each of the 16 hex pad keys",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	fmt.Println("physical keyboard        CHIP-8 keypad")
	fmt.Println("  1 2 3 4                  1 2 3 C")
	fmt.Println("  Q W E R        -->       4 5 6 D")
	fmt.Println("  A S D F                  7 8 9 E")
	fmt.Println("  Z X C V                  A 0 B F")
}
