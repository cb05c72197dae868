package api

import (
	"studiobook/internal/infra"
)

// Read-side lookups surface repository errors directly, without command
// sentinels in between.
func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
