package tetris

import "math/rand"

// QueueDepth is the number of upcoming shapes kept visible.
const QueueDepth = 5

// Generator deals shapes from shuffled bags of all seven.
type Generator struct {
	rng   *rand.Rand
	bag   []Shape // consumed from the back
	queue []Shape
}

// NewGenerator creates a generator and fills the lookahead queue.
func NewGenerator(rng *rand.Rand) *Generator {
	g := &Generator{rng: rng}
	g.bag = g.pack()
	g.queue = make([]Shape, 0, QueueDepth+1)
	for range QueueDepth {
		g.queue = append(g.queue, g.pop())
	}
	return g
}

// pack builds a fresh bag by repeatedly swap-removing a random shape.
func (g *Generator) pack() []Shape {
	orig := AllShapes[:]
	pool := make([]Shape, len(orig))
	copy(pool, orig)

	bag := make([]Shape, 0, len(pool))
	for n := len(pool); n > 0; n-- {
		i := g.rng.Intn(n)
		bag = append(bag, pool[i])
		pool[i] = pool[n-1]
		pool = pool[:n-1]
	}
	return bag
}

func (g *Generator) pop() Shape {
	s := g.bag[len(g.bag)-1]
	g.bag = g.bag[:len(g.bag)-1]
	return s
}

// Next returns the next shape to play and tops the queue back up.
func (g *Generator) Next() Shape {
	g.queue = append(g.queue, g.pop())
	if len(g.bag) == 0 {
		g.bag = g.pack()
	}
	s := g.queue[0]
	g.queue = append(g.queue[:0], g.queue[1:]...)
	return s
}

// Queue returns a copy of the upcoming shapes, next first.
func (g *Generator) Queue() []Shape {
	out := make([]Shape, len(g.queue))
	copy(out, g.queue)
	return out
}
