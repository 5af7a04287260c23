//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures (wasm, riscv64, ...) use the per-pixel kernels.
	currentLevel = DispatchScalar
}
