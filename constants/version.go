package constants

// Version is overridden at build time with -ldflags "-X ...constants.Version=v1.2.3".
var Version = "source"

const (
	DefaultHost = "https://deploy.meisterlabs.com"
	AppName     = "samson-cli"
)

func UserAgent() string {
	return AppName + "/" + Version
}
