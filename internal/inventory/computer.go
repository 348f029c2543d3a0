package inventory

// Computer is a host holding an ordered list of addresses and an ordered,
// polymorphic list of hardware components. Both lists are owned exclusively
// by the computer.
type Computer struct {
	name       string
	addresses  []Address
	components Collection[Component]
}

// NewComputer creates a computer with no addresses or components.
func NewComputer(name string) *Computer {
	return &Computer{name: name}
}

// Name returns the host name.
func (c *Computer) Name() string {
	return c.name
}

// AddAddress validates and appends a network address.
func (c *Computer) AddAddress(text string) error {
	addr, err := NewAddress(text)
	if err != nil {
		return err
	}
	c.addresses = append(c.addresses, addr)
	return nil
}

// AddComponent appends a hardware component.
func (c *Computer) AddComponent(comp Component) {
	c.components.Add(comp)
}

// Addresses returns the addresses in insertion order.
func (c *Computer) Addresses() []Address {
	out := make([]Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// Components returns the components in insertion order.
func (c *Computer) Components() []Component {
	return c.components.Items()
}

// FindComponent returns the stored component equal to comp, or ErrNotFound.
func (c *Computer) FindComponent(comp Component) (Component, error) {
	return c.components.Find(comp)
}

// Clone returns a deep copy: addresses are copied by value, components are
// cloned recursively. Mutating the copy never affects the original.
func (c *Computer) Clone() *Computer {
	copied := NewComputer(c.name)
	copied.addresses = make([]Address, len(c.addresses))
	copy(copied.addresses, c.addresses)
	for _, comp := range c.components.Items() {
		copied.components.Add(comp.Clone())
	}
	return copied
}
