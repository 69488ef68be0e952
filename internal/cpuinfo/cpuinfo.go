// Package cpuinfo reports which SIMD feature bits the host CPU exposes.
//
// This is purely informational: sflz4's encoder and decoder never branch
// on any of these flags, so nothing here affects codec behavior. It
// exists so a caller (cmd/sflz4demo's -features flag, in particular) can
// print what the machine is capable of.
package cpuinfo

import "runtime"

// Features describes the SIMD-relevant capabilities of the running host.
type Features struct {
	Arch      string
	HasSSE41  bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

// Detect returns the Features of the current host.
func Detect() Features {
	f := Features{Arch: runtime.GOARCH}
	detect(&f)
	return f
}

// String renders f as a short human-readable summary.
func (f Features) String() string {
	s := f.Arch + ":"
	any := false
	for _, pair := range []struct {
		name string
		has  bool
	}{
		{"sse4.1", f.HasSSE41},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	} {
		if pair.has {
			s += " " + pair.name
			any = true
		}
	}
	if !any {
		s += " none"
	}
	return s
}
