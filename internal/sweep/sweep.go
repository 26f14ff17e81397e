// Package sweep runs the same scenario across a set of packet momenta
// concurrently, one full propagation per goroutine. Runs are
// independent, so the only shared state is the result slot each worker
// owns.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/experiment"
	"github.com/san-kum/qwave/internal/observe"
	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/transmission"
)

// Point is one sweep sample: the packet's momentum and mean energy,
// the WKB estimate at that energy, and the measured probabilities.
type Point struct {
	Momentum float64
	Energy   float64
	WKB      float64
	T        float64
	R        float64
	Sum      float64
}

// Transmission propagates one packet per momentum against the
// configured barrier and collects T(E). The base config is never
// mutated; each worker runs on its own copy.
func Transmission(ctx context.Context, base *config.Config, momenta []float64) ([]Point, error) {
	if len(momenta) == 0 {
		return nil, fmt.Errorf("%w: sweep needs at least one momentum", quantum.ErrInvalidParameter)
	}

	points := make([]Point, len(momenta))
	errs := make([]error, len(momenta))

	var wg sync.WaitGroup
	for i, p := range momenta {
		wg.Add(1)
		go func(idx int, momentum float64) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			cfg := *base
			cfg.Packet.Momentum = momentum
			points[idx], errs[idx] = runOne(&cfg)
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

func runOne(cfg *config.Config) (Point, error) {
	exp, err := experiment.New(cfg)
	if err != nil {
		return Point{}, err
	}
	psi0, err := exp.Packet()
	if err != nil {
		return Point{}, err
	}
	energy := observe.Energy(exp.H, psi0)

	wkb, err := transmission.EstimateWKB(exp.Potential, cfg.Mass, energy)
	if err != nil {
		return Point{}, err
	}

	traj, err := exp.Evolve()
	if err != nil {
		return Point{}, err
	}
	res, err := exp.Transmission(traj)
	if err != nil {
		return Point{}, err
	}

	return Point{
		Momentum: cfg.Packet.Momentum,
		Energy:   energy,
		WKB:      wkb,
		T:        res.T,
		R:        res.R,
		Sum:      res.Sum,
	}, nil
}
