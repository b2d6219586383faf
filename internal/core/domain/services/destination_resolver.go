package services

import (
	"fmt"
	"strings"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/pkg/errs"
)

// DestinationResolver picks the branch that fulfils orders submitted from an origin.
//
// The branch named preferredName wins when it exists. Otherwise the only branch
// other than the origin is used. Any other directory shape is a deployment
// mistake reported as an errs.ConfigurationError.
type DestinationResolver struct {
	preferredName string
}

func NewDestinationResolver(preferredName string) DestinationResolver {
	return DestinationResolver{preferredName: strings.TrimSpace(preferredName)}
}

// Resolve returns the destination for origin among locations. The result may
// equal the origin when the preferred branch submits; order creation rejects that.
func (r DestinationResolver) Resolve(origin kernel.UUID, locations []*location.Location) (*location.Location, error) {
	if r.preferredName != "" {
		for _, l := range locations {
			if strings.EqualFold(l.Name(), r.preferredName) {
				return l, nil
			}
		}
	}

	var candidates []*location.Location
	for _, l := range locations {
		if !l.Is(origin) {
			candidates = append(candidates, l)
		}
	}

	if len(candidates) != 1 {
		return nil, errs.NewConfigurationErrorWithCause("destination location", fmt.Errorf(
			"location %q is not configured and %d other locations exist, expected exactly one",
			r.preferredName, len(candidates)))
	}
	return candidates[0], nil
}
