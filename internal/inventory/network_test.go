package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNetwork(t *testing.T) *Network {
	t.Helper()

	n := NewNetwork("MISIS network")

	server1 := NewComputer("server1.misis.ru")
	require.NoError(t, server1.AddAddress("192.168.1.1"))
	server1.AddComponent(NewCPU(4, 2500))
	server1.AddComponent(NewMemory(16000))
	n.AddComputer(server1)

	server2 := NewComputer("server2.misis.ru")
	require.NoError(t, server2.AddAddress("10.0.0.1"))
	server2.AddComponent(NewCPU(8, 3200))
	disk, err := NewDisk(Magnetic, 2000)
	require.NoError(t, err)
	require.NoError(t, disk.AddPartition(500, "system"))
	require.NoError(t, disk.AddPartition(1500, "data"))
	server2.AddComponent(disk)
	n.AddComputer(server2)

	return n
}

func TestFindComputer(t *testing.T) {
	n := buildNetwork(t)

	found := n.FindComputer("server2.misis.ru")
	require.NotNil(t, found)
	assert.Equal(t, "server2.misis.ru", found.Name())

	assert.Nil(t, n.FindComputer("nonexistent"))
}

func TestFindComputerReturnsFirstMatch(t *testing.T) {
	n := NewNetwork("lab")
	first := NewComputer("twin")
	second := NewComputer("twin")
	n.AddComputer(first)
	n.AddComputer(second)

	assert.Same(t, first, n.FindComputer("twin"))
}

func TestComputersPreserveInsertionOrder(t *testing.T) {
	n := buildNetwork(t)

	computers := n.Computers()
	require.Len(t, computers, 2)
	assert.Equal(t, "server1.misis.ru", computers[0].Name())
	assert.Equal(t, "server2.misis.ru", computers[1].Name())

	comps := computers[1].Components()
	require.Len(t, comps, 2)
	assert.IsType(t, &CPU{}, comps[0])
	assert.IsType(t, &Disk{}, comps[1])
}

func TestCloneIndependence(t *testing.T) {
	original := buildNetwork(t)
	clone := original.Clone()

	// Mutate the clone: the original must not change.
	found := clone.FindComputer("server2.misis.ru")
	require.NotNil(t, found)
	ssd, err := NewDisk(SSD, 500)
	require.NoError(t, err)
	require.NoError(t, ssd.AddPartition(500, "fast_storage"))
	found.AddComponent(ssd)

	assert.Len(t, original.FindComputer("server2.misis.ru").Components(), 2)
	assert.Len(t, found.Components(), 3)

	// And the other direction.
	original.FindComputer("server1.misis.ru").AddComponent(NewMemory(8000))
	assert.Len(t, clone.FindComputer("server1.misis.ru").Components(), 2)
}

func TestCloneCopiesNestedState(t *testing.T) {
	original := buildNetwork(t)
	clone := original.Clone()

	// Growing a cloned disk never grows the original's.
	var cloneDisk *Disk
	for _, comp := range clone.FindComputer("server2.misis.ru").Components() {
		if d, ok := comp.(*Disk); ok {
			cloneDisk = d
		}
	}
	require.NotNil(t, cloneDisk)
	require.Error(t, cloneDisk.AddPartition(1, "overflow")) // still full

	var origDisk *Disk
	for _, comp := range original.FindComputer("server2.misis.ru").Components() {
		if d, ok := comp.(*Disk); ok {
			origDisk = d
		}
	}
	require.NotNil(t, origDisk)
	assert.NotSame(t, origDisk, cloneDisk)
	assert.Len(t, origDisk.Partitions(), 2)
}

func TestComputerCloneCopiesAddresses(t *testing.T) {
	c := NewComputer("server1.misis.ru")
	require.NoError(t, c.AddAddress("192.168.1.1"))

	clone := c.Clone()
	require.NoError(t, clone.AddAddress("10.0.0.2"))

	assert.Len(t, c.Addresses(), 1)
	assert.Len(t, clone.Addresses(), 2)
}
