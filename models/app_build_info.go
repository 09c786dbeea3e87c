package models

// AppBuildInfo carries build-time metadata injected through linker flags and
// printed at client startup.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs AppBuildInfo, substituting "N/A" for any value
// the build did not set.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}
