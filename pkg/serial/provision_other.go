//go:build unix && !linux

package serial

// OpenDevice is only implemented on Linux.
func OpenDevice(path string, cfg LineConfig) (*Channel, error) {
	return nil, ErrUnsupportedPlatform
}

// Spawn is only implemented on Linux.
func Spawn(command, args string) (*Channel, error) {
	return nil, ErrUnsupportedPlatform
}

func openDeviceSpec(path, spec string) (*Channel, error) {
	return nil, ErrUnsupportedPlatform
}
