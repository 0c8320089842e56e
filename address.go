package unique

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// CollectionAddressPrefix is the 16-byte prefix shared by every collection address.
	CollectionAddressPrefix = "0x17c4e6453cc49aaaaeaca894e6d9683e"

	// NestingAddressPrefix is the 12-byte prefix of token (nesting) addresses.
	NestingAddressPrefix = "0xf8238ccfff8ed887463fd5e0"

	maxID = 0xFFFFFFFF
)

// Well-known contracts that do not depend on a collection.
var (
	CollectionHelpersAddress = common.HexToAddress("0x6c4e9fe1ae37a41e93cee429e8e1881abdcbb54f")
	ContractHelpersAddress   = common.HexToAddress("0x842899ecf380553e8a4de75bf534cdf6fbf64049")
)

var collectionPrefixBytes = common.FromHex(CollectionAddressPrefix)

func checkID(kind string, id int64) error {
	if id < 0 || id > maxID {
		return &RangeError{Kind: kind, Value: id}
	}
	return nil
}

// CollectionIDToLowercaseAddress maps a collection id to its lowercase hex address.
func CollectionIDToLowercaseAddress(collectionID int64) (string, error) {
	if err := checkID("collection id", collectionID); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%08x", CollectionAddressPrefix, collectionID), nil
}

// CollectionIDToAddress maps a collection id to its contract address.
func CollectionIDToAddress(collectionID int64) (common.Address, error) {
	s, err := CollectionIDToLowercaseAddress(collectionID)
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(s), nil
}

// AddressToCollectionID is the inverse of CollectionIDToAddress.
func AddressToCollectionID(addr common.Address) (uint32, error) {
	if !bytes.Equal(addr[:len(collectionPrefixBytes)], collectionPrefixBytes) {
		return 0, fmt.Errorf("%w: %s", ErrNotCollectionAddress, addr.Hex())
	}
	return binary.BigEndian.Uint32(addr[len(collectionPrefixBytes):]), nil
}

// TokenAddress derives the nesting address of a token within a collection.
func TokenAddress(collectionID, tokenID int64) (common.Address, error) {
	if err := checkID("collection id", collectionID); err != nil {
		return common.Address{}, err
	}
	if err := checkID("token id", tokenID); err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(fmt.Sprintf("%s%08x%08x", NestingAddressPrefix, collectionID, tokenID)), nil
}

// CollectionRef identifies a collection either by numeric id or by address.
// This is a sealed interface - only CollectionID and CollectionAddress implement it.
type CollectionRef interface {
	isCollectionRef()

	// Address resolves the collection's contract address.
	Address() (common.Address, error)

	// ID resolves the collection's numeric id.
	ID() (uint32, error)
}

func refAddress(ref CollectionRef) (common.Address, error) {
	if ref == nil {
		return common.Address{}, ErrNilCollection
	}
	return ref.Address()
}

func refID(ref CollectionRef) (uint32, error) {
	if ref == nil {
		return 0, ErrNilCollection
	}
	return ref.ID()
}

// CollectionID references a collection by its numeric id.
type CollectionID int64

func (CollectionID) isCollectionRef() {}

// Address derives the collection address from the id.
func (id CollectionID) Address() (common.Address, error) {
	return CollectionIDToAddress(int64(id))
}

// ID returns the id after a range check.
func (id CollectionID) ID() (uint32, error) {
	if err := checkID("collection id", int64(id)); err != nil {
		return 0, err
	}
	return uint32(id), nil
}

// CollectionAddress references a collection by a literal address string.
// The string is used verbatim; it is not validated.
type CollectionAddress string

func (CollectionAddress) isCollectionRef() {}

// Address converts the literal to an address.
func (a CollectionAddress) Address() (common.Address, error) {
	return common.HexToAddress(string(a)), nil
}

// ID extracts the collection id embedded in the address.
func (a CollectionAddress) ID() (uint32, error) {
	return AddressToCollectionID(common.HexToAddress(string(a)))
}
