package bb

var (
	Version     = "v0.0.0-in-progress"
	UpstreamSHA = "unknown"
	UpstreamDir = "barretenberg/cpp"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the pinned barretenberg commit SHA, set at build
// time via ldflags. libbb exports no version symbol to query.
func UpstreamVersion() string {
	return UpstreamSHA
}
