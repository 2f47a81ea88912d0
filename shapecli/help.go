package shapecli

import (
	"fmt"
	"path/filepath"
	"strings"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/geoshape/lib/shape"
	"oss.terrastruct.com/geoshape/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--debug] [--strict] [--regular] shape x,y x,y x,y [x,y]
  %[1]s demo
  %[1]s calc x op y
  %[1]s palindrome word
  %[1]s primes n ...
  %[1]s anagrams word ...

%[1]s validates the polygon given by its vertices as the named shape and prints
its area, perimeter, inner angles, vertices, edges and whether it's regular.
Edges are derived by joining each vertex to the next and the last to the first.

Shapes: %[4]s

Flags:
%[3]s

Subcommands:
  %[1]s demo - Builds one of every shape from fixed vertices
  %[1]s types - Lists the shape types
  %[1]s calc x op y - Applies op, one of + - * /, to x and y
  %[1]s palindrome word - Reports whether word reads the same backwards
  %[1]s primes n ... - Lists the primes among the given integers
  %[1]s anagrams word ... - Lists the words that are anagrams of another given word
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults(), strings.Join(shape.Types, ", "))
}
