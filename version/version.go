package version

import "fmt"

// Set at build time with -ldflags "-X btcrpc/version.GitTag=... -X btcrpc/version.GitCommit=...".
var GitCommit string
var GitTag string

// UserAgent is sent with every JSON-RPC request.
var UserAgent string

func init() {
	UserAgent = fmt.Sprintf("btcrpc/%s+%s", GitTag, GitCommit)
}
