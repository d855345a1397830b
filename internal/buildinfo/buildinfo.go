package buildinfo

// Set at build time via -ldflags "-X leftpad/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)
