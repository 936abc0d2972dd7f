// Package hostinfo reports the CPU capabilities relevant to recorded
// benchmark runs, so printed numbers carry their hardware context.
package hostinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Summary returns a one-line banner of the form
//
//	cpu: amd64 avx=true avx2=true avx512f=false
//
// listing the vector-extension features that matter for integer kernels
// on the current architecture. Unknown architectures report GOARCH only.
func Summary() string {
	switch runtime.GOARCH {
	case "amd64":
		return fmt.Sprintf("cpu: %s avx=%t avx2=%t avx512f=%t",
			runtime.GOARCH, cpu.X86.HasAVX, cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
	case "arm64":
		return fmt.Sprintf("cpu: %s asimd=%t sve=%t",
			runtime.GOARCH, cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	default:
		return fmt.Sprintf("cpu: %s", runtime.GOARCH)
	}
}
