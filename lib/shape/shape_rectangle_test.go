package shape_test

import (
	"testing"

	"go.uber.org/multierr"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/geoshape/lib/geo"
	"oss.terrastruct.com/geoshape/lib/shape"
)

func TestRectangle(t *testing.T) {
	t.Parallel()

	r, err := shape.NewRectangle(pts(0, 0, 3, 0, 3, 4, 0, 4), nil)
	assert.Success(t, err)
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 4.0, r.Height())
	assert.Equal(t, 12.0, r.Area())
	assert.Equal(t, 14.0, r.Perimeter())
	assert.JSON(t, []float64{90, 90, 90, 90}, r.InnerAngles())
	assert.False(t, r.IsRegular())
	assertClose(t, 1.5, r.Centroid().X, 1e-9)
	assertClose(t, 2, r.Centroid().Y, 1e-9)
	assert.Equal(t, "{TopLeft: (0, 0), Width: 3, Height: 4}", r.Bound().ToString())
}

func TestRectangleVertexOrder(t *testing.T) {
	t.Parallel()

	// rotating or reversing the cycle keeps every edge between neighbours
	adjacent := []geo.Points{
		pts(0, 0, 3, 0, 3, 4, 0, 4),
		pts(3, 0, 3, 4, 0, 4, 0, 0),
		pts(3, 4, 0, 4, 0, 0, 3, 0),
		pts(0, 4, 3, 4, 3, 0, 0, 0),
	}
	for _, vertices := range adjacent {
		r, err := shape.NewRectangle(vertices, nil)
		assert.Success(t, err)
		assert.Equal(t, 12.0, r.Area())
		assert.Equal(t, 14.0, r.Perimeter())
	}

	// a crossed order turns edge 0 into a diagonal, and nothing notices by default
	r, err := shape.NewRectangle(pts(0, 0, 3, 4, 3, 0, 0, 4), nil)
	assert.Success(t, err)
	assert.Equal(t, 20.0, r.Area())
	assert.Equal(t, 18.0, r.Perimeter())
	assert.JSON(t, []float64{90, 90, 90, 90}, r.InnerAngles())
}

func TestStrictRectangle(t *testing.T) {
	t.Parallel()

	r, err := shape.NewStrictRectangle(pts(0, 0, 3, 0, 3, 4, 0, 4), nil)
	assert.Success(t, err)
	assert.Equal(t, 12.0, r.Area())

	// tilted rectangles are fine as long as the corners are square
	r, err = shape.NewStrictRectangle(pts(0, 0, 3, 3, 1, 5, -2, 2), nil)
	assert.Success(t, err)
	assertClose(t, 12, r.Area(), 1e-9)

	_, err = shape.NewStrictRectangle(pts(0, 0, 3, 4, 3, 0, 0, 4), nil)
	assert.True(t, shape.IsKind(err, shape.InvalidRectangle))
	assert.Equal(t, 4, len(multierr.Errors(err)))

	_, err = shape.NewStrictRectangle(pts(0, 0, 3, 0, 4, 2, 1, 2), nil)
	assert.True(t, shape.IsKind(err, shape.InvalidRectangle))
	assert.Equal(t, 4, len(multierr.Errors(err)))

	// both pairs of opposite sides mismatch, and the two corners on the slanted edge are off
	_, err = shape.NewStrictRectangle(pts(0, 0, 4, 0, 3, 4, 0, 4), nil)
	errs := multierr.Errors(err)
	assert.Equal(t, 4, len(errs))
	assert.Equal(t, "edges 0 and 2 are opposite but have lengths 4 and 3", errs[0].Error())
}

func TestSquare(t *testing.T) {
	t.Parallel()

	s, err := shape.NewSquare(pts(0, 0, 3, 0, 3, 3, 0, 3), nil)
	assert.Success(t, err)
	assert.Equal(t, 3.0, s.Side())
	assert.Equal(t, 9.0, s.Area())
	assert.Equal(t, 12.0, s.Perimeter())
	assert.JSON(t, []float64{90, 90, 90, 90}, s.InnerAngles())
	assert.True(t, s.IsRegular())
	assert.True(t, s.Is(shape.SQUARE_TYPE))
	assert.Equal(t, s.Width(), s.Height())
}

func TestSquareRejectsUnequalSides(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		vertices geo.Points
	}{
		{name: "rectangle", vertices: pts(0, 0, 3, 0, 3, 4, 0, 4)},
		{name: "crossed_order", vertices: pts(0, 0, 3, 3, 3, 0, 0, 3)},
		{name: "slightly_off", vertices: pts(0, 0, 3, 0, 3, 3.001, 0, 3.001)},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := shape.NewSquare(tc.vertices, nil)
			assert.ErrorString(t, err, "square must have equal sides")
			assert.True(t, shape.IsKind(err, shape.InvalidSquare))
		})
	}
}
