package layout_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/groeilab/internal/layout"
)

const tol = 1e-9

// overlaps reports whether two square tiles intersect beyond tolerance.
func overlaps(a, b layout.Tile) bool {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	half := (a.Size + b.Size) / 2
	return dx < half-tol && dy < half-tol
}

func expectNoOverlap(tiles []layout.Tile) {
	GinkgoHelper()
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			Expect(overlaps(tiles[i], tiles[j])).To(BeFalse(),
				"tiles %d and %d overlap", i, j)
		}
	}
}

func expectInUnitSquare(tiles []layout.Tile) {
	GinkgoHelper()
	for _, t := range tiles {
		Expect(t.X - t.Size/2).To(BeNumerically(">=", -tol))
		Expect(t.X + t.Size/2).To(BeNumerically("<=", 1+tol))
		Expect(t.Y - t.Size/2).To(BeNumerically(">=", -tol))
		Expect(t.Y + t.Size/2).To(BeNumerically("<=", 1+tol))
	}
}

var _ = Describe("Grid", func() {
	It("returns exactly n tiles", func() {
		for _, n := range []int{1, 2, 3, 9, 27, 100, 1000} {
			Expect(layout.Grid(n)).To(HaveLen(n))
		}
	})

	It("returns nothing for non-positive n", func() {
		Expect(layout.Grid(0)).To(BeEmpty())
		Expect(layout.Grid(-5)).To(BeEmpty())
	})

	It("keeps tiles inside the unit square", func() {
		expectInUnitSquare(layout.Grid(81))
	})

	It("produces no overlapping tiles", func() {
		expectNoOverlap(layout.Grid(64))
	})

	It("shrinks tiles as counts grow", func() {
		small := layout.Grid(9)
		large := layout.Grid(900)
		Expect(large[0].Size).To(BeNumerically("<", small[0].Size))
	})
})

var _ = Describe("Clusters", func() {
	It("returns parents*k child tiles", func() {
		_, children, _ := layout.Clusters(9, 3)
		Expect(children).To(HaveLen(27))
	})

	It("groups children by parent index", func() {
		_, children, _ := layout.Clusters(4, 5)
		perParent := map[int]int{}
		for _, c := range children {
			perParent[c.Parent]++
		}
		Expect(perParent).To(HaveLen(4))
		for p := 0; p < 4; p++ {
			Expect(perParent[p]).To(Equal(5))
		}
	})

	It("draws one arrow per parent", func() {
		parents, _, arrows := layout.Clusters(6, 2)
		Expect(arrows).To(HaveLen(6))
		Expect(parents).To(HaveLen(6))
	})

	It("produces no overlapping tiles across parents and children", func() {
		parents, children, _ := layout.Clusters(5, 4)
		expectNoOverlap(append(append([]layout.Tile{}, parents...), children...))
	})

	It("stays inside the unit square", func() {
		parents, children, _ := layout.Clusters(7, 6)
		expectInUnitSquare(parents)
		expectInUnitSquare(children)
	})

	It("returns nothing for degenerate input", func() {
		p, c, a := layout.Clusters(0, 3)
		Expect(p).To(BeNil())
		Expect(c).To(BeNil())
		Expect(a).To(BeNil())
	})
})

var _ = Describe("ForGeneration", func() {
	counts := []int64{3, 9, 27}

	It("lays out generation 0 as a plain grid", func() {
		parents, children, arrows, err := layout.ForGeneration(counts, 0, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(parents).To(BeNil())
		Expect(children).To(HaveLen(3))
		Expect(arrows).To(BeNil())
	})

	It("returns exactly count[g] child tiles for later generations", func() {
		_, children, _, err := layout.ForGeneration(counts, 2, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(children).To(HaveLen(27))
	})

	It("rejects generations over the tile budget", func() {
		big := []int64{3, layout.MaxTiles + 1}
		_, _, _, err := layout.ForGeneration(big, 1, 3)
		Expect(err).To(MatchError(layout.ErrBudget))
	})

	It("rejects out-of-range generations", func() {
		_, _, _, err := layout.ForGeneration(counts, 5, 3)
		Expect(err).To(MatchError(layout.ErrBudget))
	})
})

var _ = Describe("LastWithinBudget", func() {
	It("finds the last generation that fits", func() {
		counts := []int64{3, 400, 4000, 40000}
		Expect(layout.LastWithinBudget(counts)).To(Equal(2))
	})

	It("returns -1 when nothing fits", func() {
		Expect(layout.LastWithinBudget([]int64{layout.MaxTiles + 1})).To(Equal(-1))
	})
})
