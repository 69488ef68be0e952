//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func detect(f *Features) {
	f.HasSSE41 = cpu.X86.HasSSE41
	f.HasAVX2 = cpu.X86.HasAVX2
	f.HasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
