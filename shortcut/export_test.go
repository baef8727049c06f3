package shortcut

// withStepHook lets tests wait for each key event to be evaluated.
func withStepHook(f func(keyEvent, []Event)) Option {
	return func(l *Listener) { l.onStep = f }
}
