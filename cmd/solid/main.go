package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sghaida/solid/examples/dip"
	"github.com/sghaida/solid/examples/isp"
	"github.com/sghaida/solid/examples/lsp"
	"github.com/sghaida/solid/examples/ocp"
	"github.com/sghaida/solid/examples/srp"
	"github.com/sghaida/solid/registry"
)

// demoFunc is the uniform shape of a principle demo: print the contrast to w,
// fail only if a stand-in fails.
type demoFunc func(w io.Writer) error

// newDemoRegistry registers every demo under its principle name.
//
// This is the one genuinely dynamic lookup in the repo, which is exactly what
// the keyed registry is for: the demo to run is chosen from the command line
// at runtime.
func newDemoRegistry() *registry.Registry {
	return registry.New().
		Register("srp", demoFunc(srp.Demo)).
		Register("ocp", demoFunc(ocp.Demo)).
		Register("lsp", demoFunc(lsp.Demo)).
		Register("isp", demoFunc(isp.Demo)).
		Register("dip", demoFunc(dip.Demo))
}

// run executes the runner logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("solid", flag.ContinueOnError)
	flags.SetOutput(stderr)

	list := flags.Bool("list", false, "list available demos and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	reg := newDemoRegistry()

	if *list {
		_, _ = fmt.Fprintln(stdout, strings.Join(reg.Keys(), "\n"))
		return 0
	}

	names := flags.Args()
	if len(names) == 0 {
		names = reg.Keys()
	}

	for i, name := range names {
		demo, err := registry.TryAs[demoFunc](reg, name)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "solid: %v (available: %s)\n",
				err, strings.Join(reg.Keys(), ", "))
			return 2
		}

		if i > 0 {
			_, _ = fmt.Fprintln(stdout)
		}
		if err := demo(stdout); err != nil {
			_, _ = fmt.Fprintf(stderr, "solid: demo %q failed: %v\n", name, err)
			return 1
		}
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
