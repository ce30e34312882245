package main

import (
	"fmt"
	"os"

	"chosenoffset.com/kaiju/internal/config"
	"chosenoffset.com/kaiju/internal/placeholders"
)

func main() {
	fmt.Println("Kaiju Placeholder Asset Generator")
	fmt.Println("=================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := placeholders.GenerateAndSave(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder assets are ready to use.")
	fmt.Println("Replace them with your own sprite and sounds at any time.")
}
