package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type perftCase struct {
	label string
	fen   string
	depth int
}

var perftCases = []perftCase{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
}

// Usage: go run ./cmd/benchrun
func main() {
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, c := range perftCases {
		args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(c.depth), "-label", c.label}
		if c.fen != "" {
			args = append(args, "-fen", c.fen)
		}
		run("go", args...)
	}

	run("go", "run", "./cmd/perft", "-depth", "4", "-repeat", "2", "-tree", "-label", "Tree")

	fmt.Println("\nTree reuse:")
	run("go", "run", "./cmd/searchbench", "-depth", "3", "-repeat", "2", "-reuse", "-log-level", "warn")
}
