package inventory

import "fmt"

// Component is a hardware component installed in a Computer.
// Each variant renders a single descriptive line and knows how to
// deep-copy itself.
type Component interface {
	// Describe returns the component's display line, e.g. "CPU, 4 cores @ 2500MHz".
	Describe() string
	// Clone returns a copy sharing no mutable state with the receiver.
	Clone() Component
}

// CPU is a processor component.
type CPU struct {
	Cores    int
	ClockMHz int
}

// NewCPU creates a CPU component.
func NewCPU(cores, clockMHz int) *CPU {
	return &CPU{Cores: cores, ClockMHz: clockMHz}
}

func (c *CPU) Describe() string {
	return fmt.Sprintf("CPU, %d cores @ %dMHz", c.Cores, c.ClockMHz)
}

func (c *CPU) Clone() Component {
	copied := *c
	return &copied
}

// Memory is a RAM component.
type Memory struct {
	SizeMiB int
}

// NewMemory creates a memory component.
func NewMemory(sizeMiB int) *Memory {
	return &Memory{SizeMiB: sizeMiB}
}

func (m *Memory) Describe() string {
	return fmt.Sprintf("Memory, %d MiB", m.SizeMiB)
}

func (m *Memory) Clone() Component {
	copied := *m
	return &copied
}
