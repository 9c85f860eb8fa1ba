package adapters

// Environment exposes the ambient host signals the emitter reads: location,
// referrer and the privacy opt-outs. A nil Environment means the emitter is
// running where no page exists yet (server rendering); privacy signals then
// read as not set and the real decision happens where they exist.
type Environment interface {
	// CurrentURL returns the current path.
	CurrentURL() string
	// Referrer returns the referring URL, empty when there is none.
	Referrer() string
	// DoNotTrack returns the host's do-not-track signal; "1" is an opt-out.
	DoNotTrack() string
	// GlobalPrivacyControl reports the GPC opt-out flag.
	GlobalPrivacyControl() bool
}
