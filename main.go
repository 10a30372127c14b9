package main

import (
	"github.com/faiface/pixel/pixelgl"
	"github.com/gochippy/chippy/cmd"
)

func main() {
	// pixelgl needs to run on the main thread, so hand control to it and
	// execute the cobra command tree from inside its callback.
	pixelgl.Run(cmd.Execute)
}
