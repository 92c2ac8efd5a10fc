package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chesscore/engine"
)

// convert folds one or more continuation-tree snapshots of the same position
// into a single snapshot, optionally printing the merged tree.
func main() {
	output := flag.String("out", "", "Output snapshot file")
	render := flag.Bool("render", false, "Print the merged tree to stdout")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 || (*output == "" && !*render) {
		fmt.Println("Usage: convert [-out merged.snap] [-render] <input.snap>...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	root, err := engine.LoadSnapshot(inputs[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Loading %s failed: %v\n", inputs[0], err)
		os.Exit(1)
	}
	for _, in := range inputs[1:] {
		other, err := engine.LoadSnapshot(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Loading %s failed: %v\n", in, err)
			os.Exit(1)
		}
		if !other.Position().Equal(root.Position()) {
			fmt.Fprintf(os.Stderr, "Skipping %s: different root position\n", in)
			continue
		}
		root.Merge(other)
	}

	if *render {
		fmt.Print(root.Render(""))
	}
	if *output == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := engine.SaveSnapshot(*output, root); err != nil {
		fmt.Fprintf(os.Stderr, "Conversion failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d nodes to %s\n", root.TotalSize(), *output)
}
