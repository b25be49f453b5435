package client

import (
	"context"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
)

// Client is the transport contract the domain services are built on.
type Client interface {
	// Do sends body (nil for none) as JSON and decodes a 2xx reply into out
	// (nil to discard it).
	Do(ctx context.Context, ep endpoint.Endpoint, body any, out any) error
	// Upload sends image as the multipart "proof" part.
	Upload(ctx context.Context, ep endpoint.Endpoint, image []byte, out any) error
}
