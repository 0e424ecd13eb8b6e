package cliflag

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func TestUint32Var(t *testing.T) {
	tests := []struct {
		arg     string
		want    uint32
		wantErr bool
	}{
		{"", 4096, false},
		{"0", 0, false},
		{"100", 100, false},
		{"4294967295", 4294967295, false},
		{"4294967296", 0, true},
		{"4294967297", 0, true},
		{"-1", 0, true},
		{"1e3", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			var v uint32
			Uint32Var(fs, &v, "maxiter", 4096, "")

			var args []string
			if tt.arg != "" {
				args = []string{"-maxiter", tt.arg}
			}
			err := fs.Parse(args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("-maxiter %s accepted as %d", tt.arg, v)
				}
				return
			}
			if err != nil || v != tt.want {
				t.Errorf("-maxiter %s = %d, %v; want %d", tt.arg, v, err, tt.want)
			}
		})
	}
}

func TestUint32DefaultInUsage(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var out strings.Builder
	fs.SetOutput(&out)
	var v uint32
	Uint32Var(fs, &v, "w", 1920, "raster width")
	fs.PrintDefaults()
	if !strings.Contains(out.String(), "(default 1920)") {
		t.Errorf("usage %q does not show the default", out.String())
	}
}
