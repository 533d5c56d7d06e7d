// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/katalvlaran/ntwrk/network"
)

// Sink persists one built table and returns the run id it was stored under.
type Sink interface {
	Write(ctx context.Context, kind string, t *network.Table) (string, error)
	Close() error
}
