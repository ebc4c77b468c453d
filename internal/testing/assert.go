package testing

import (
	"reflect"
	"testing"

	"github.com/onsi/gomega"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// ExpectValidRing asserts that start is a member of a well formed ring of size members.
//
// Every member must be its successor's predecessor and its predecessor's successor,
// the forward walk must close after exactly size steps and the backward walk must
// visit the same members in reverse order.
func ExpectValidRing[E comparable](g gomega.Gomega, start E, next, prev func(E) E, size int) {
	g.Expect(size).To(gomega.BeNumerically(">", 0))

	forward := make([]E, 0, size)
	e := start
	for i := 0; i < size; i++ {
		g.Expect(prev(next(e))).To(gomega.BeIdenticalTo(e), "prev(next(e)) at step %d", i)
		g.Expect(next(prev(e))).To(gomega.BeIdenticalTo(e), "next(prev(e)) at step %d", i)
		forward = append(forward, e)
		e = next(e)
		if i < size-1 {
			g.Expect(e).NotTo(gomega.BeIdenticalTo(start), "ring closed early after %d steps", i+1)
		}
	}
	g.Expect(e).To(gomega.BeIdenticalTo(start), "ring did not close after %d steps", size)

	backward := make([]E, 0, size)
	e = start
	for i := 0; i < size; i++ {
		backward = append(backward, e)
		e = prev(e)
	}
	g.Expect(e).To(gomega.BeIdenticalTo(start))

	for i := 1; i < size; i++ {
		g.Expect(backward[i]).To(gomega.BeIdenticalTo(forward[size-i]))
	}
}
