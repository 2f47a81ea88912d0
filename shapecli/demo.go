package shapecli

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/geoshape/lib/geo"
	"oss.terrastruct.com/geoshape/lib/shape"
)

type demoShape struct {
	title     string
	shapeType string
	vertices  geo.Points
}

var demoShapes = []demoShape{
	{"Right triangle", shape.RIGHT_TRIANGLE_TYPE, geo.Points{geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(0, 4)}},
	{"Scalene triangle", shape.SCALENE_TYPE, geo.Points{geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(1, 4)}},
	{"Isosceles triangle", shape.ISOSCELES_TYPE, geo.Points{geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(1.5, 4)}},
	{"Equilateral triangle", shape.EQUILATERAL_TYPE, geo.Points{geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(1.5, 2.598)}},
	{"Rectangle", shape.RECTANGLE_TYPE, geo.Points{geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(3, 4), geo.NewPoint(0, 4)}},
	{"Square", shape.SQUARE_TYPE, geo.Points{geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(3, 3), geo.NewPoint(0, 3)}},
}

// demoCmd builds every demo shape even when some fail, then reports all failures together.
func demoCmd(ctx context.Context, ms *xmain.State, opts *shape.Opts) (err error) {
	defer xdefer.Errorf(&err, "failed to run demo")

	if len(ms.Opts.Flags.Args()) > 1 {
		return xmain.UsageErrorf("demo subcommand accepts no arguments")
	}

	for _, d := range demoShapes {
		s, buildErr := shape.NewShape(ctx, d.shapeType, d.vertices, nil, opts)
		if buildErr != nil {
			err = multierr.Append(err, buildErr)
			continue
		}
		fmt.Fprintf(ms.Stdout, "# %s\n", d.title)
		printShape(ms, s)
		fmt.Fprintln(ms.Stdout)
	}
	if err != nil {
		ms.Log.Warn.Printf("%d of %d demo shapes failed", len(multierr.Errors(err)), len(demoShapes))
		return err
	}
	ms.Log.Success.Printf("built %d shapes", len(demoShapes))
	return nil
}
