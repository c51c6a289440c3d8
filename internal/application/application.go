package application

const (
	// AppName is the application name used for directories and identification
	AppName = "findstar"

	// AppExeName is the executable name (without extension)
	AppExeName = "findstar"

	// Version is the release version reported by the version command
	Version = "0.2.0"
)
