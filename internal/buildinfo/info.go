package buildinfo

var (
	// Version se fija con ldflags al compilar.
	Version = "dev"
	// Commit se fija con ldflags al compilar.
	Commit = "none"
	// Date se fija con ldflags al compilar.
	Date = "unknown"
)
