package ports

// SettingsSource is the host-side configuration handle a parameter provider
// reads from. Each lookup reports whether the key was present and held a
// value of the requested kind.
type SettingsSource interface {
	Float(key string) (float64, bool)
	Int(key string) (int, bool)
	Bool(key string) (bool, bool)
	Text(key string) (string, bool)
	// Has reports presence regardless of type
	Has(key string) bool
}
