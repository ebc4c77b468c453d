package cdlist_test

import (
	"github.com/mgnsk/cdlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("a chain of ten nodes", func() {
	var nodes []*cdlist.Node[int]

	BeforeEach(func() {
		nodes = newNodes(10)
		connectAll(nodes, 0, 10)
	})

	Specify("it is traversed in both directions", func() {
		expectValidRing(Default, nodes[0], 10)
		Expect(collect(nodes[0])).To(Equal(seq(0, 10)))
		Expect(collectRev(nodes[9])).To(Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}))
	})

	Specify("every member sees the whole ring", func() {
		for _, n := range nodes {
			Expect(n.Len()).To(Equal(10))
			Expect(collect(n)).To(ConsistOf(seq(0, 10)))
		}
	})

	When("even nodes are detached", func() {
		BeforeEach(func() {
			for _, i := range []int{0, 2, 4, 6, 8} {
				nodes[i].Detach()
			}
		})

		Specify("each detached node is a ring of one", func() {
			for _, i := range []int{0, 2, 4, 6, 8} {
				Expect(nodes[i].Singleton()).To(BeTrue())
				Expect(collect(nodes[i])).To(Equal([]int{i}))
			}
		})

		Specify("the odd nodes stay linked", func() {
			expectValidRing(Default, nodes[1], 5)
			Expect(collect(nodes[1])).To(Equal([]int{1, 3, 5, 7, 9}))
		})

		Specify("detaching again changes nothing", func() {
			nodes[0].Detach()
			Expect(collect(nodes[0])).To(Equal([]int{0}))
			Expect(collect(nodes[1])).To(Equal([]int{1, 3, 5, 7, 9}))
		})
	})

	When("the first node is released", func() {
		BeforeEach(func() {
			nodes[0].Release()
		})

		Specify("the rest still form a ring", func() {
			expectValidRing(Default, nodes[1], 9)
			Expect(collect(nodes[1])).To(Equal(seq(1, 10)))
			Expect(collectRev(nodes[9])).To(Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1}))
		})

		Specify("the released node cannot be used", func() {
			Expect(nodes[0].Value).To(BeZero())
			Expect(func() { nodes[0].Next() }).To(PanicWith("cdlist: use of released or uninitialized node"))
			Expect(func() { nodes[1].Splice(nodes[0]) }).To(Panic())
			Expect(nodes[1].Len()).To(Equal(9))
		})
	})

	When("values are mutated during traversal", func() {
		Specify("the ring keeps its order", func() {
			offset := 0
			nodes[0].DoMut(func(v *int) {
				*v += offset
				offset++
			})

			Expect(collect(nodes[0])).To(Equal([]int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}))
			expectValidRing(Default, nodes[0], 10)
		})
	})
})

var _ = Describe("splicing", func() {
	When("moving a node inside its own ring", func() {
		Specify("it follows the anchor", func() {
			nodes := newNodes(3)
			connectAll(nodes, 0, 3)

			nodes[2].Splice(nodes[1])

			Expect(collect(nodes[0])).To(Equal([]int{0, 2, 1}))
			Expect(collect(nodes[2])).To(Equal([]int{2, 1, 0}))
		})
	})

	When("moving a node between rings", func() {
		var nodes []*cdlist.Node[int]

		BeforeEach(func() {
			nodes = newNodes(10)
			connectAll(nodes, 0, 5)
			connectAll(nodes, 5, 10)
			nodes[2].Splice(nodes[7])
		})

		Specify("the anchor ring gains the node", func() {
			expectValidRing(Default, nodes[0], 6)
			Expect(collect(nodes[0])).To(Equal([]int{0, 1, 2, 7, 3, 4}))
		})

		Specify("the source ring closes the gap", func() {
			expectValidRing(Default, nodes[5], 4)
			Expect(collect(nodes[5])).To(Equal([]int{5, 6, 8, 9}))
		})
	})

	When("splicing before", func() {
		Specify("it mirrors Splice", func() {
			a, b := cdlist.New("a"), cdlist.New("b")
			c, d := cdlist.New("a"), cdlist.New("b")

			b.SpliceBefore(a)
			c.Splice(d)

			Expect(collect(a)).To(Equal(collect(c)))
			Expect(collectRev(b)).To(Equal(collectRev(d)))
		})
	})
})
