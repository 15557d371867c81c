package main

import (
	"fmt"
	"os"

	"jigsaw/src/ui"
)

func main() {
	if err := ui.RunJigsaw(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
