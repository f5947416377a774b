// Package monitoring wraps one unit of work in a New Relic segment and logs its outcome.
package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerCatalog    = "catalog"
	LayerGate       = "biometric"
	LayerCommand    = "kiosctl"
	LayerUnknown    = "unknown"
)

// layerByPath is checked in order against the caller's file path.
var layerByPath = []string{LayerRepository, LayerService, LayerCatalog, LayerGate, LayerCommand}

type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time
	segment     *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New starts a segment on the transaction carried by ctx, if any. Without WithSegmentName
// the segment is named after the calling function and the layer is taken from its file.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.segmentName == "" {
		name, file := callerInfo(2)
		o.segmentName = name
		if o.layer == "" {
			o.layer = layerFromFile(file)
		}
	}
	if o.layer == "" {
		o.layer = LayerUnknown
	}

	segment := newrelic.FromContext(ctx).StartSegment(o.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", o.layer)
	}

	return &Monitor{
		ctx:         ctx,
		segmentName: o.segmentName,
		layer:       o.layer,
		start:       time.Now(),
		segment:     segment,
	}
}

// NewRoundTripper reports outgoing requests as external segments of the transaction found
// on the request context.
func NewRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return newrelic.NewRoundTripper(next)
}
