//go:build !cgo

package platform

func init() {
	register("sdl", func(WindowConfig) (PlatformWindowWrapper, error) {
		return nil, ErrBackendUnavailable
	})
}
