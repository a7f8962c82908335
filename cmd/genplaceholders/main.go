package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/rtsclient/internal/placeholders"
)

func main() {
	out := flag.String("out", "data/tilesets", "directory to write terrain.png and terrain.json into")
	flag.Parse()

	fmt.Println("Terrain Placeholder Generator")
	fmt.Println("=============================")

	if err := placeholders.GenerateAndSave(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s/terrain.png and %s/terrain.json\n", *out, *out)
}
