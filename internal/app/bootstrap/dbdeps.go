// internal/app/bootstrap/dbdeps.go
package bootstrap

import "github.com/dalemusser/recruitdesk/internal/app/system/apiclient"

// DBDeps holds the back-end dependencies for the app. All data lives
// behind the recruitment REST API, so the only dependency is its client.
type DBDeps struct {
	API *apiclient.Client
}
