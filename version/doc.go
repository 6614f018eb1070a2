// Package version resolves the gofetch library version and the User-Agent
// string sent with every request.
//
// The version comes from, in order: the Version variable set via -ldflags,
// the module version recorded in the binary's build info, and finally "dev".
//
//	go build -ldflags "-X github.com/kbukum/gofetch/version.Version=v1.0.0"
package version
