package constants

// WebURLMap holds the Samson web pages the CLI can open. The first verb is
// the host, the second (when present) the project id.
var WebURLMap = map[string]string{
	"dashboard": "%s",
	"project":   "%s/projects/%d",
	"deploys":   "%s/projects/%d/deploys",
	"stages":    "%s/projects/%d/stages",
}
