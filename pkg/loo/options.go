package loo

import (
	"log"

	"github.com/pssmlab/loorun/pkg/loo/drawer"
	"github.com/pssmlab/loorun/pkg/loo/measure"
)

type DriverOption func(d *Driver)

// DriverLogger sets the logger for driver and scheduler events.
func DriverLogger(logger *log.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

// DriverConcurrency caps the number of jobs running at once within a phase.
// Zero means no cap.
func DriverConcurrency(limit int) DriverOption {
	return func(d *Driver) {
		d.limit = limit
	}
}

// DriverDrawer renders the run plan graph after the run.
func DriverDrawer(dr drawer.Drawer) DriverOption {
	return func(d *Driver) {
		d.drawer = dr
	}
}

// DriverMeasure records per-job and per-phase wall times.
func DriverMeasure(msr measure.Measure) DriverOption {
	return func(d *Driver) {
		d.msr = msr
	}
}
