// Package inventory models a network of computers with their addresses and
// hardware components. Entities are built bottom-up through explicit add
// calls, mutated append-only, and deep-copied through per-entity Clone
// operations. The model is single-threaded; callers that share an instance
// across goroutines must synchronize externally.
package inventory

// Network is the top-level aggregate: a named, ordered list of computers.
type Network struct {
	name      string
	computers []*Computer
}

// NewNetwork creates an empty network.
func NewNetwork(name string) *Network {
	return &Network{name: name}
}

// Name returns the network name.
func (n *Network) Name() string {
	return n.name
}

// AddComputer appends a computer. Insertion order is display order.
func (n *Network) AddComputer(c *Computer) {
	n.computers = append(n.computers, c)
}

// Computers returns the computers in insertion order.
func (n *Network) Computers() []*Computer {
	out := make([]*Computer, len(n.computers))
	copy(out, n.computers)
	return out
}

// FindComputer returns the first computer with the given name, or nil when
// no computer matches.
func (n *Network) FindComputer(name string) *Computer {
	for _, c := range n.computers {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of the network and everything it owns.
func (n *Network) Clone() *Network {
	copied := NewNetwork(n.name)
	for _, c := range n.computers {
		copied.computers = append(copied.computers, c.Clone())
	}
	return copied
}
