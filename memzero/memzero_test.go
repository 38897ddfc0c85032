package memzero_test

import (
	"testing"

	"sagecrypto/memzero"
)

func TestZero(t *testing.T) {
	cases := map[string][]byte{
		"all-ff":  {0xFF, 0xFF, 0xFF, 0xFF},
		"all-00":  {0, 0, 0, 0},
		"mixed":   {0xDE, 0xAD, 0xBE, 0xEF, 0x01},
		"single":  {0x80},
		"longish": make([]byte, 4096),
	}
	for i := range cases["longish"] {
		cases["longish"][i] = byte(i)
	}

	for name, buf := range cases {
		memzero.Zero(buf)
		for i, b := range buf {
			if b != 0 {
				t.Fatalf("%s: byte %d is %#x after Zero", name, i, b)
			}
		}
	}
}

func TestZeroEmpty(t *testing.T) {
	memzero.Zero(nil)
	memzero.Zero([]byte{})
}
