package drift

// isBlocked decides whether this activation may queue and deliver anything.
// Ambient privacy signals are consulted only when the host exposes an
// environment; with no environment (server rendering) the signals read as
// not-blocked and the real decision happens where they exist.
func isBlocked(cfg Config, env Environment) bool {
	if cfg.SiteID == "" || cfg.Disabled {
		return true
	}
	if !cfg.respectSignals() || env == nil {
		return false
	}
	if env.DoNotTrack() == "1" {
		return true
	}
	return env.GlobalPrivacyControl()
}
