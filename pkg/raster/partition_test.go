package raster

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestPlanRegionsDisjointAndBounded(t *testing.T) {
	for _, kernel := range []int{1, 3, 5, 7} {
		radius := kernel / 2
		for _, height := range []int{8, 16, 100, 101} {
			for tasks := 1; tasks <= 8; tasks++ {
				part := PlanStencil(64, height, tasks, kernel)
				if len(part) != tasks {
					t.Fatalf("k=%d h=%d tasks=%d: got %d regions", kernel, height, tasks, len(part))
				}
				prevEnd := radius
				for i, reg := range part {
					if reg.Y1 < reg.Y0 {
						t.Fatalf("k=%d h=%d tasks=%d region %d has negative extent: %+v", kernel, height, tasks, i, reg)
					}
					if reg.Y0 < prevEnd {
						t.Fatalf("k=%d h=%d tasks=%d region %d overlaps its predecessor: %+v", kernel, height, tasks, i, reg)
					}
					if reg.Y1 > height-radius {
						t.Fatalf("k=%d h=%d tasks=%d region %d reaches into the bottom halo: %+v", kernel, height, tasks, i, reg)
					}
					if reg.X0 != radius || reg.X1 != 64-radius {
						t.Fatalf("k=%d h=%d tasks=%d region %d has wrong columns: %+v", kernel, height, tasks, i, reg)
					}
					prevEnd = reg.Y1
				}
			}
		}
	}
}

func TestPlanSinglePartitionCoversInterior(t *testing.T) {
	part := PlanStencil(20, 30, 1, 5)
	want := Region{X0: 2, X1: 18, Y0: 2, Y1: 28}
	if len(part) != 1 || part[0] != want {
		t.Fatalf("got %+v, want [%+v]", part, want)
	}
}

func TestPlanPointDropsRemainderRows(t *testing.T) {
	part := PlanPoint(8, 10, 3)
	rows := 0
	for _, reg := range part {
		rows += reg.Y1 - reg.Y0
	}
	if rows != 9 {
		t.Fatalf("expected 9 assigned rows (remainder dropped), got %d", rows)
	}
	if last := part[len(part)-1]; last.Y1 != 9 {
		t.Fatalf("last region should end at row 9, got %+v", last)
	}
}

func TestPlanEmptyRegionsPermitted(t *testing.T) {
	// yChunk smaller than the kernel: most regions collapse inside the halo.
	part := PlanStencil(16, 16, 8, 7)
	empties := 0
	for _, reg := range part {
		if reg.Empty() {
			empties++
		}
	}
	if empties == 0 {
		t.Fatal("expected empty regions when chunks fall inside the halo")
	}
}

func TestPlanGoldens(t *testing.T) {
	g := goldie.New(t)
	cases := map[string]Partition{
		"stencil_100x100_k3_t4": PlanStencil(100, 100, 4, 3),
		"stencil_64x64_k5_t3":   PlanStencil(64, 64, 3, 5),
		"stencil_16x16_k7_t8":   PlanStencil(16, 16, 8, 7),
		"point_32x32_t5":        PlanPoint(32, 32, 5),
	}
	for name, part := range cases {
		t.Run(name, func(t *testing.T) {
			g.Assert(t, name, []byte(part.String()))
		})
	}
}
