//go:build arm64

package cpuinfo

// x/sys/cpu has no portable NEON leaf: every arm64 target has it, so the
// teacher's matcher_sse.go fallback (runtime.GOARCH == "arm64") is the
// grounded way to report it here too.
func detect(f *Features) {
	f.HasNEON = true
}
