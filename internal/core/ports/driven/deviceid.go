package driven

// DeviceIdentity issues the stable per-device identifier used to
// namespace locally authored content. It is never an authentication
// credential.
type DeviceIdentity interface {
	// DeviceID returns the persisted device identifier, generating and
	// persisting one on first call. Subsequent calls return the same
	// string. If the backing storage is unavailable the id degrades to a
	// fresh value per call; a known limitation, not an error.
	DeviceID() (string, error)
}
