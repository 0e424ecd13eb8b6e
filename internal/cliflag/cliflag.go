// Package cliflag holds flag.Value types shared by the commands.
package cliflag

import (
	"flag"
	"strconv"
)

// Uint32 is a flag.Value for uint32 options. Values above math.MaxUint32
// are rejected instead of being truncated.
type Uint32 uint32

func (v *Uint32) String() string {
	return strconv.FormatUint(uint64(*v), 10)
}

func (v *Uint32) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*v = Uint32(n)
	return nil
}

// Uint32Var defines a uint32 flag with the given default on fs.
func Uint32Var(fs *flag.FlagSet, p *uint32, name string, value uint32, usage string) {
	*p = value
	fs.Var((*Uint32)(p), name, usage)
}
