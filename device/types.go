package device

// DeviceInfo describes an accelerator device.
type DeviceInfo struct {
	Name     string
	Vendor   string
	Driver   string
	MemoryMB int
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// Options controls device operator creation.
type Options struct {
	// DeviceIndex selects which device to use (0 = default).
	DeviceIndex int
}
