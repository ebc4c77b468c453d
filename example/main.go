package main

import (
	"os"

	"github.com/mgnsk/cdlist"
	"github.com/mgnsk/cdlist/arena"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.DebugLevel)

	// Two rings of nodes: 0..4 and 5..9.
	nodes := make([]*cdlist.Node[int], 10)
	for i := range nodes {
		nodes[i] = cdlist.New(i)
	}
	for i := 0; i < 9; i++ {
		if i != 4 {
			nodes[i].Splice(nodes[i+1])
		}
	}

	// Move 7 to follow 2.
	nodes[2].Splice(nodes[7])

	log.WithField("ring", values(nodes[0])).Info("first ring")
	log.WithField("ring", values(nodes[5])).Info("second ring")

	// The same moves over a slot table.
	a := arena.New[string](arena.WithCapacity(3), arena.WithLogger(log))
	x, y, z := a.Insert("x"), a.Insert("y"), a.Insert("z")
	if err := a.Splice(x, y); err != nil {
		log.WithError(err).Fatal("splice")
	}
	if err := a.Splice(y, z); err != nil {
		log.WithError(err).Fatal("splice")
	}
	if _, err := a.Release(y); err != nil {
		log.WithError(err).Fatal("release")
	}
	if _, err := a.Value(y); err != nil {
		log.WithError(err).Warn("stale ref")
	}

	var ring []string
	if err := a.Do(x, func(v string) { ring = append(ring, v) }); err != nil {
		log.WithError(err).Fatal("traverse")
	}
	log.WithField("ring", ring).Info("arena ring")
}

func values(n *cdlist.Node[int]) []int {
	var vs []int
	for v := range n.All() {
		vs = append(vs, *v)
	}
	return vs
}
