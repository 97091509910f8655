package ecs

import (
	"math/bits"
	"strconv"
)

// MaxComponentTypes is the number of distinct component types a catalog can
// hold. It is also the width of a Signature.
const MaxComponentTypes = 32

// ComponentTypeID is the small integer assigned to a component type when it
// is registered with a ComponentCatalog.
type ComponentTypeID uint8

// Signature records which component types an entity currently has. Bit i is
// set when the entity holds the component whose type ID is i.
type Signature uint32

// SignatureOf builds a signature with the given type IDs set.
func SignatureOf(ids ...ComponentTypeID) Signature {
	var s Signature
	for _, id := range ids {
		s = s.Set(id)
	}
	return s
}

// Set returns a copy of s with the bit for id set.
func (s Signature) Set(id ComponentTypeID) Signature {
	return s | 1<<(id&(MaxComponentTypes-1))
}

// Clear returns a copy of s with the bit for id cleared.
func (s Signature) Clear(id ComponentTypeID) Signature {
	return s &^ (1 << (id & (MaxComponentTypes - 1)))
}

// Has reports whether the bit for id is set.
func (s Signature) Has(id ComponentTypeID) bool {
	return s&(1<<(id&(MaxComponentTypes-1))) != 0
}

// Contains reports whether every bit set in sub is also set in s.
func (s Signature) Contains(sub Signature) bool {
	return s&sub == sub
}

// Count returns the number of component types in the signature.
func (s Signature) Count() int {
	return bits.OnesCount32(uint32(s))
}

func (s Signature) IsEmpty() bool {
	return s == 0
}

func (s Signature) String() string {
	str := strconv.FormatUint(uint64(s), 2)
	for len(str) < MaxComponentTypes {
		str = "0" + str
	}
	return str
}
