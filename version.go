package dumplite

// Version is the build version, stamped via -ldflags by release builds.
var Version = "dev"
