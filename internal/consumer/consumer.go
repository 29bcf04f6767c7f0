// Package consumer contains interface of events consumer.
package consumer

import (
	"context"
)

// Consumer consumes interaction events from the internal stream.
type Consumer interface {
	Run(ctx context.Context) error
}
