package inventory

import "fmt"

// StorageKind classifies a disk's storage technology.
type StorageKind int

const (
	SSD StorageKind = iota
	Magnetic
)

// Label returns the display label for the storage kind.
func (k StorageKind) Label() string {
	if k == Magnetic {
		return "HDD"
	}
	return "SSD"
}

// Partition is a named slice of a disk. Partitions are owned by their
// disk and are not independently addressable.
type Partition struct {
	SizeGiB int
	Name    string
}

// Disk is a storage component holding an ordered list of partitions.
// The partition sizes never sum to more than the disk's total size.
type Disk struct {
	kind       StorageKind
	sizeGiB    int
	partitions []Partition
}

// NewDisk creates a disk of the given kind and total size.
func NewDisk(kind StorageKind, sizeGiB int) (*Disk, error) {
	if kind != SSD && kind != Magnetic {
		return nil, &ValidationError{
			Field:  "storage kind",
			Value:  fmt.Sprintf("%d", kind),
			Reason: "must be SSD or Magnetic",
		}
	}
	return &Disk{kind: kind, sizeGiB: sizeGiB}, nil
}

// Kind returns the disk's storage kind.
func (d *Disk) Kind() StorageKind {
	return d.kind
}

// SizeGiB returns the disk's total size.
func (d *Disk) SizeGiB() int {
	return d.sizeGiB
}

// AddPartition appends a partition. It fails with a *CapacityError when the
// partition would not fit in the remaining free space, leaving the disk
// unchanged.
func (d *Disk) AddPartition(sizeGiB int, name string) error {
	free := d.sizeGiB
	for _, p := range d.partitions {
		free -= p.SizeGiB
	}
	if sizeGiB > free {
		return &CapacityError{Requested: sizeGiB, Free: free}
	}
	d.partitions = append(d.partitions, Partition{SizeGiB: sizeGiB, Name: name})
	return nil
}

// Partitions returns the partitions in insertion order. The returned slice
// is a copy; mutating it does not affect the disk.
func (d *Disk) Partitions() []Partition {
	out := make([]Partition, len(d.partitions))
	copy(out, d.partitions)
	return out
}

func (d *Disk) Describe() string {
	return fmt.Sprintf("%s, %d GiB", d.kind.Label(), d.sizeGiB)
}

func (d *Disk) Clone() Component {
	copied := &Disk{kind: d.kind, sizeGiB: d.sizeGiB}
	copied.partitions = make([]Partition, len(d.partitions))
	copy(copied.partitions, d.partitions)
	return copied
}
