package app

// AudioSink is an opaque handle to an audio-output collaborator. The host
// does not drive audio itself; it only carries the sink through the
// Context so the application can reach it from its callbacks. Attach one
// with [WithAudioSink]. Lifetime stays with the embedder: the host never
// closes the sink.
type AudioSink interface {
	// Close releases the audio device.
	Close() error
}
