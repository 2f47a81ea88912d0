package shapecli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/xmain"
	"oss.terrastruct.com/util-go/xos"

	"oss.terrastruct.com/geoshape/lib/version"
	"oss.terrastruct.com/geoshape/shapecli"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name   string
		env    map[string]string
		args   []string
		exp    []string
		expErr string
	}{
		{
			name: "right_triangle",
			args: []string{"RightTriangle", "0,0", "3,0", "0,4"},
			exp: []string{
				"RightTriangle\n",
				"area:         6\n",
				"perimeter:    12\n",
				"vertices:     (0, 0), (3, 0), (0, 4)\n",
				"regular:      false\n",
			},
		},
		{
			name: "negative_coordinates",
			args: []string{"RightTriangle", "-1,0", "2,0", "-1,4"},
			exp: []string{
				"area:         6\n",
				"vertices:     (-1, 0), (2, 0), (-1, 4)\n",
			},
		},
		{
			name: "negative_coordinates_after_flags",
			args: []string{"--strict", "Square", "-2,-2", "0,-2", "0,0", "-2,0"},
			exp:  []string{"area:         4\n"},
		},
		{
			name: "alias",
			args: []string{"right", "0,0", "3,0", "0,4"},
			exp:  []string{"RightTriangle\n"},
		},
		{
			name: "case_insensitive",
			args: []string{"square", "0,0", "2,0", "2,2", "0,2"},
			exp: []string{
				"Square\n",
				"area:         4\n",
				"inner angles: [90 90 90 90]\n",
				"regular:      true\n",
			},
		},
		{
			name: "regular_triangle",
			args: []string{"--regular", "Triangle", "0,0", "3,0", "1,4"},
			exp:  []string{"regular:      true\n"},
		},
		{
			name:   "not_a_square",
			args:   []string{"Square", "0,0", "3,0", "3,4", "0,4"},
			expErr: "square must have equal sides",
		},
		{
			name:   "unknown_shape",
			args:   []string{"Pentagon", "0,0", "1,0", "1,1"},
			expErr: `bad usage: unknown shape "Pentagon"`,
		},
		{
			name:   "missing_vertices",
			args:   []string{"Triangle"},
			expErr: "bad usage: Triangle must be passed its vertices as x,y pairs",
		},
		{
			name:   "bad_vertex",
			args:   []string{"Triangle", "0,0", "3", "1,4"},
			expErr: `bad usage: vertex "3" must be written as x,y`,
		},
		{
			name: "lenient_rectangle",
			args: []string{"Rectangle", "0,0", "3,4", "3,0", "0,4"},
			exp:  []string{"area:         20\n"},
		},
		{
			name:   "strict_flag",
			args:   []string{"--strict", "Rectangle", "0,0", "3,4", "3,0", "0,4"},
			expErr: "not a right angle",
		},
		{
			name:   "strict_env",
			env:    map[string]string{"GEOSHAPE_STRICT": "1"},
			args:   []string{"Rectangle", "0,0", "3,4", "3,0", "0,4"},
			expErr: "not a right angle",
		},
		{
			name: "demo",
			args: []string{"demo"},
			exp: []string{
				"# Right triangle\n",
				"# Scalene triangle\n",
				"# Isosceles triangle\n",
				"# Equilateral triangle\n",
				"# Rectangle\n",
				"# Square\n",
			},
		},
		{
			name: "calc",
			args: []string{"calc", "3", "/", "2"},
			exp:  []string{"3 / 2 = 1.5\n"},
		},
		{
			name: "calc_negative_operand",
			args: []string{"calc", "3", "-", "-2"},
			exp:  []string{"3 - -2 = 5\n"},
		},
		{
			name:   "calc_division_by_zero",
			args:   []string{"calc", "3", "/", "0"},
			expErr: "failed to calculate: division by zero",
		},
		{
			name: "palindrome",
			args: []string{"palindrome", "Reconocer"},
			exp:  []string{"Reconocer is a palindrome\n"},
		},
		{
			name: "primes",
			args: []string{"primes", "1", "2", "9", "11"},
			exp:  []string{"primes: [2 11]\n"},
		},
		{
			name:   "primes_not_integer",
			args:   []string{"primes", "2", "x"},
			expErr: `failed to list primes: "x" is not a valid integer`,
		},
		{
			name: "anagrams",
			args: []string{"anagrams", "Roma", "amor", "perro"},
			exp:  []string{"amor roma\n"},
		},
		{
			name: "version",
			args: []string{"version"},
			exp:  []string{version.Version + "\n"},
		},
		{
			name: "types",
			args: []string{"types"},
			exp:  []string{"Triangle\nIsosceles\nEquilateral\nScalene\nRightTriangle\nRectangle\nSquare\n"},
		},
	}

	ctx := context.Background()
	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			dir, cleanup := assert.TempDir(t)
			defer cleanup()

			env := xos.NewEnv(nil)
			for k, v := range tc.env {
				env.Setenv(k, v)
			}

			stdout := &bytes.Buffer{}
			tms := &xmain.TestState{
				Run:    shapecli.Run,
				Env:    env,
				Args:   append([]string{"shapecli/geoshape"}, tc.args...),
				PWD:    dir,
				Stdout: stdout,
			}
			tms.Start(t, ctx)
			defer tms.Cleanup(t)
			err := tms.Wait(ctx)

			if tc.expErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tc.expErr)
				}
				assert.True(t, strings.Contains(err.Error(), tc.expErr))
				return
			}
			assert.Success(t, err)
			for _, exp := range tc.exp {
				if !strings.Contains(stdout.String(), exp) {
					t.Fatalf("expected output to contain %q, got:\n%s", exp, stdout.String())
				}
			}
		})
	}
}
