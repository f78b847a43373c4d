package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg Config, op string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	err := Run(cfg, op, args, &buf)

	return buf.String(), err
}

func TestRunOperations(t *testing.T) {
	a := assert.New(t)

	rat := DefaultConfig()

	tests := []struct {
		op   string
		args []string
		want string
	}{
		{"format", []string{"3,-1,2"}, "2*x^2-x+3"},
		{"format", []string{"1/2, -2/3"}, "-2/3*x+1/2"},
		{"format", []string{""}, "0"},
		{"add", []string{"1,2", "3,0,1"}, "x^2+2*x+4"},
		{"sub", []string{"1,2", "1,2"}, "0"},
		{"mul", []string{"1,2,3", "1,1"}, "3*x^3+5*x^2+3*x+1"},
		{"div", []string{"2,-3,1", "-1,1"}, "x-2"},
		{"rem", []string{"1,0,1", "-1,1"}, "2"},
		{"gcd", []string{"2,-3,1", "-3,2,1"}, "x-1"},
		{"compose", []string{"0,0,1", "1,1"}, "x^2+2*x+1"},
		{"eval", []string{"1,2,3", "2"}, "17"},
		{"degree", []string{""}, "-1"},
		{"degree", []string{"0,0,5,0"}, "2"},
		{"deriv", []string{"1,2,3"}, "6*x+2"},
		{"interpolate", []string{"0,1,2", "1,3,7"}, "x^2+x+1"},
	}

	for _, tt := range tests {
		out, err := run(t, rat, tt.op, tt.args...)
		a.NoError(err, "%s %v", tt.op, tt.args)
		a.Equal(tt.want+"\n", out, "%s %v", tt.op, tt.args)
	}
}

func TestRunRings(t *testing.T) {
	a := assert.New(t)

	t.Run("int", func(t *testing.T) {
		out, err := run(t, Config{Ring: "int"}, "div", "0,0,4", "0,2")
		a.NoError(err)
		a.Equal("2*x\n", out)

		_, err = run(t, Config{Ring: "int"}, "div", "0,0,3", "0,2")
		a.ErrorIs(err, poly.ErrInexactDivision)

		_, err = run(t, Config{Ring: "int"}, "gcd", "0,3,2", "3,2")
		a.ErrorIs(err, poly.ErrInexactDivision)

		_, err = run(t, Config{Ring: "int"}, "interpolate", "0,2", "0,1")
		a.ErrorIs(err, poly.ErrInexactDivision)
	})

	t.Run("float", func(t *testing.T) {
		out, err := run(t, Config{Ring: "float"}, "mul", "0.5", "1,1")
		a.NoError(err)
		a.Equal("0.5*x+0.5\n", out)
	})

	t.Run("mod", func(t *testing.T) {
		cfg := Config{Ring: "mod", Modulus: 7}

		out, err := run(t, cfg, "div", "6,0,1", "1,1")
		a.NoError(err)
		a.Equal("x-1\n", out)

		out, err = run(t, cfg, "eval", "0,1", "9")
		a.NoError(err)
		a.Equal("2\n", out)

		_, err = run(t, Config{Ring: "mod", Modulus: 8}, "format", "1")
		a.ErrorIs(err, field.ErrNotPrime)
	})

	t.Run("bls12-377", func(t *testing.T) {
		out, err := run(t, Config{Ring: "bls12-377"}, "sub", "1", "0,1")
		a.NoError(err)
		a.Equal("-x+1\n", out)
	})
}

func TestRunErrors(t *testing.T) {
	a := assert.New(t)

	rat := DefaultConfig()

	_, err := run(t, Config{Ring: "complex"}, "format", "1")
	a.ErrorIs(err, errUnknownRing)

	_, err = run(t, rat, "integrate", "1")
	a.ErrorIs(err, errUnknownOperation)

	_, err = run(t, rat, "add", "1")
	a.ErrorIs(err, errArgCount)

	_, err = run(t, rat, "format", "1,a")
	a.Error(err)

	_, err = run(t, rat, "div", "1", "")
	a.ErrorIs(err, poly.ErrDivisionByZero)

	_, err = run(t, rat, "interpolate", "1,1", "2,3")
	a.ErrorIs(err, poly.ErrNonUniqueXs)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	a := assert.New(t)

	t.Run("toml", func(t *testing.T) {
		cfg, err := LoadConfig(writeFile(t, "polycalc.toml", "ring = \"mod\"\nmodulus = 7\n"))
		a.NoError(err)
		a.Equal(Config{Ring: "mod", Modulus: 7}, cfg)
	})

	t.Run("yaml", func(t *testing.T) {
		cfg, err := LoadConfig(writeFile(t, "polycalc.yaml", "ring: int\n"))
		a.NoError(err)
		a.Equal(Config{Ring: "int", Modulus: defaultModulus}, cfg)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "polycalc.json", "{}"))
		a.ErrorIs(err, errUnknownConfigFormat)

		_, err = LoadConfig(writeFile(t, "bad.toml", "ring = "))
		a.Error(err)

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		a.Error(err)
	})
}

func TestExecuteLayersFlagsOverConfig(t *testing.T) {
	path := writeFile(t, "polycalc.toml", "ring = \"int\"\nmodulus = 7\n")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", path, "--ring", "mod", "format", "6,1"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "x-1\n", buf.String())
}
