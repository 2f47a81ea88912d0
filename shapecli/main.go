package shapecli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/geoshape/lib/geo"
	"oss.terrastruct.com/geoshape/lib/log"
	"oss.terrastruct.com/geoshape/lib/shape"
	"oss.terrastruct.com/geoshape/lib/version"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	strictFlag, err := ms.Opts.Bool("GEOSHAPE_STRICT", "strict", "s", false, "check that rectangles and squares have equal opposite sides and four right corners, instead of trusting the first two edges.")
	if err != nil {
		return err
	}
	regularFlag, err := ms.Opts.Bool("", "regular", "r", false, "mark a plain Triangle as regular. Every other shape decides this itself.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	// Flags come before the subcommand. Everything after it is positional, so
	// negative coordinates and operands like -1,0 aren't read as shorthand flags.
	ms.Opts.Flags.SetInterspersed(false)
	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	switch ms.Opts.Flags.Arg(0) {
	case "demo":
		return demoCmd(ctx, ms, &shape.Opts{Strict: *strictFlag})
	case "calc":
		return calcCmd(ctx, ms)
	case "palindrome":
		return palindromeCmd(ctx, ms)
	case "primes":
		return primesCmd(ctx, ms)
	case "anagrams":
		return anagramsCmd(ctx, ms)
	case "types":
		for _, t := range shape.Types {
			fmt.Fprintln(ms.Stdout, t)
		}
		return nil
	case "version":
		if len(ms.Opts.Flags.Args()) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	return shapeCmd(ctx, ms, &shape.Opts{
		Strict:  *strictFlag,
		Regular: *regularFlag,
	})
}

// aliases are accepted on the command line next to the canonical type names
var aliases = map[string]string{
	"right": shape.RIGHT_TRIANGLE_TYPE,
	"rect":  shape.RECTANGLE_TYPE,
	"iso":   shape.ISOSCELES_TYPE,
	"equi":  shape.EQUILATERAL_TYPE,
	"tri":   shape.TRIANGLE_TYPE,
}

func resolveType(arg string) (string, error) {
	if t, ok := aliases[strings.ToLower(arg)]; ok {
		return t, nil
	}
	t, ok := shape.NormalizeType(arg)
	if !ok {
		return "", xmain.UsageErrorf("unknown shape %q, expected one of: %s", arg, strings.Join(shape.Types, ", "))
	}
	return t, nil
}

func shapeCmd(ctx context.Context, ms *xmain.State, opts *shape.Opts) error {
	args := ms.Opts.Flags.Args()
	shapeType, err := resolveType(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return xmain.UsageErrorf("%s must be passed its vertices as x,y pairs", shapeType)
	}
	vertices, err := parsePoints(args[1:])
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	ms.Log.Debug.Printf("building %s from %s", shapeType, vertices.ToString())

	s, err := shape.NewBuilder(shapeType).
		Vertices(vertices...).
		Regular(opts.Regular).
		Strict(opts.Strict).
		Build(ctx)
	if err != nil {
		return xmain.ExitErrorf(1, "%v", err)
	}
	printShape(ms, s)
	return nil
}

// parsePoints reads each arg as an "x,y" pair
func parsePoints(args []string) (geo.Points, error) {
	points := make(geo.Points, 0, len(args))
	for _, arg := range args {
		xs, ys, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("vertex %q must be written as x,y", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q has an invalid x: %v", arg, errors.Unwrap(err))
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q has an invalid y: %v", arg, errors.Unwrap(err))
		}
		points = append(points, geo.NewPoint(x, y))
	}
	return points, nil
}

func printShape(ms *xmain.State, s shape.Shape) {
	fmt.Fprintf(ms.Stdout, `%s
  area:         %v
  perimeter:    %v
  inner angles: %v
  vertices:     %s
  edges:        %s
  regular:      %t
`, s.GetType(), geo.Round(s.Area(), 5), geo.Round(s.Perimeter(), 5), s.InnerAngles(), s.Vertices().ToString(), s.Edges().ToString(), s.IsRegular())
}
