package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/adaline/transfer"
)

// printInfo reports the host the unit runs on. Training is scalar float64
// code, so the SIMD flags are informational only.
func printInfo(w io.Writer) error {
	cpu := cpuid.CPU

	fmt.Fprintf(w, "Go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPU:      %s\n", cpu.BrandName)
	fmt.Fprintf(w, "Vendor:   %s\n", cpu.VendorString)
	fmt.Fprintf(w, "Cores:    %d physical, %d logical\n", cpu.PhysicalCores, cpu.LogicalCores)
	fmt.Fprintf(w, "Cache:    L1d %d B, L2 %d B, L3 %d B\n", cpu.Cache.L1D, cpu.Cache.L2, cpu.Cache.L3)
	fmt.Fprintf(w, "SIMD:     SSE2=%t AVX2=%t FMA3=%t AVX512F=%t\n",
		cpu.Supports(cpuid.SSE2),
		cpu.Supports(cpuid.AVX2),
		cpu.Supports(cpuid.FMA3),
		cpu.Supports(cpuid.AVX512F),
	)
	return nil
}

func printTransfers(w io.Writer) error {
	for _, name := range transfer.Names() {
		fmt.Fprintln(w, name)
	}
	return nil
}
