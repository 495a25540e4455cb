package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// DeploymentSet maps network identifiers to the set of addresses recorded for
// them. Networks and addresses keep their first-seen order; a repeated address
// collapses into the existing entry. A nil *DeploymentSet behaves as empty.
type DeploymentSet struct {
	source   string
	networks []string
	entries  map[string]*networkEntry
}

type networkEntry struct {
	chainID   uint64
	addresses []common.Address
	contracts map[common.Address]string
}

// NewDeploymentSet creates an empty set for the given source
func NewDeploymentSet(source string) *DeploymentSet {
	return &DeploymentSet{
		source:  source,
		entries: make(map[string]*networkEntry),
	}
}

// Source returns where the records of this set come from
func (s *DeploymentSet) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// AddNetwork registers a network without addresses
func (s *DeploymentSet) AddNetwork(network string) {
	s.entry(network)
}

// Add records an address for a network. It returns false when the address was
// already recorded for that network.
func (s *DeploymentSet) Add(network string, address common.Address, contract string) bool {
	e := s.entry(network)
	if _, exists := e.contracts[address]; exists {
		return false
	}
	e.addresses = append(e.addresses, address)
	e.contracts[address] = contract
	return true
}

// SetChainID records the chain ID of a network
func (s *DeploymentSet) SetChainID(network string, chainID uint64) {
	s.entry(network).chainID = chainID
}

// ChainID returns the chain ID of a network, 0 when unknown
func (s *DeploymentSet) ChainID(network string) uint64 {
	if e := s.lookup(network); e != nil {
		return e.chainID
	}
	return 0
}

// Networks returns the network identifiers in first-seen order
func (s *DeploymentSet) Networks() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.networks))
	copy(out, s.networks)
	return out
}

// Has reports whether the network is present, even without addresses
func (s *DeploymentSet) Has(network string) bool {
	return s.lookup(network) != nil
}

// Len returns the number of distinct addresses recorded for a network
func (s *DeploymentSet) Len(network string) int {
	if e := s.lookup(network); e != nil {
		return len(e.addresses)
	}
	return 0
}

// Contains reports whether the address is recorded for the network
func (s *DeploymentSet) Contains(network string, address common.Address) bool {
	e := s.lookup(network)
	if e == nil {
		return false
	}
	_, ok := e.contracts[address]
	return ok
}

// Addresses returns the addresses of a network in first-seen order
func (s *DeploymentSet) Addresses(network string) []common.Address {
	e := s.lookup(network)
	if e == nil {
		return nil
	}
	out := make([]common.Address, len(e.addresses))
	copy(out, e.addresses)
	return out
}

// Records returns the records of a network in first-seen order
func (s *DeploymentSet) Records(network string) []DeploymentRecord {
	e := s.lookup(network)
	if e == nil {
		return nil
	}
	out := make([]DeploymentRecord, 0, len(e.addresses))
	for _, addr := range e.addresses {
		out = append(out, DeploymentRecord{
			Network:  network,
			Address:  addr,
			Contract: e.contracts[addr],
			Source:   s.source,
		})
	}
	return out
}

// All returns every record, grouped by network in first-seen order
func (s *DeploymentSet) All() []DeploymentRecord {
	var out []DeploymentRecord
	for _, network := range s.Networks() {
		out = append(out, s.Records(network)...)
	}
	return out
}

func (s *DeploymentSet) entry(network string) *networkEntry {
	if e, ok := s.entries[network]; ok {
		return e
	}
	e := &networkEntry{contracts: make(map[common.Address]string)}
	s.entries[network] = e
	s.networks = append(s.networks, network)
	return e
}

func (s *DeploymentSet) lookup(network string) *networkEntry {
	if s == nil {
		return nil
	}
	return s.entries[network]
}
