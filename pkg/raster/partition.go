package raster

import (
	"fmt"
	"strings"
)

// Region is a half-open pixel rectangle [X0,X1) x [Y0,Y1) assigned to one
// worker for one filter pass.
type Region struct {
	X0, X1 int
	Y0, Y1 int
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Partition is an ordered set of disjoint regions, one per worker, covering
// the processable extent of an image. It is computed once per filter
// invocation and discarded after the pass.
type Partition []Region

// PlanPoint splits an image into tasks contiguous row bands for a point
// filter. Rows are divided by integer chunking; when height does not divide
// evenly the remainder rows at the bottom are dropped rather than
// redistributed.
func PlanPoint(width, height, tasks int) Partition {
	return plan(width, height, tasks, 0)
}

// PlanStencil splits an image into tasks contiguous row bands for a stencil
// filter with the given kernel size. Each band excludes the halo: a full
// kernel window must fit around every assigned pixel, so the top and bottom
// radius rows and the left and right radius columns of the image are never
// assigned. Bands are clamped to [radius, height-radius); a band that falls
// entirely inside the halo comes back empty, which is not an error.
func PlanStencil(width, height, tasks, kernelSize int) Partition {
	return plan(width, height, tasks, kernelSize/2)
}

func plan(width, height, tasks, radius int) Partition {
	yChunk := height / tasks
	yMax := height - radius
	part := make(Partition, 0, tasks)
	for i := 0; i < tasks; i++ {
		y0 := i*yChunk + radius
		y1 := y0 + yChunk
		if y0 > yMax {
			y0 = yMax
		}
		if y1 > yMax {
			y1 = yMax
		}
		part = append(part, Region{
			X0: radius,
			X1: width - radius,
			Y0: y0,
			Y1: y1,
		})
	}
	return part
}

// String renders the partition one region per line, for logs and tests.
func (p Partition) String() string {
	var sb strings.Builder
	for i, r := range p {
		fmt.Fprintf(&sb, "%d: x[%d,%d) y[%d,%d)\n", i, r.X0, r.X1, r.Y0, r.Y1)
	}
	return sb.String()
}
