package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Record sources
const (
	SourceDeclared = "declared"
	SourceDeployed = "deployed"
)

// NetworkFamily is the canonical grouping key for related networks,
// e.g. "Ethereum" for both "Ethereum" and "Ethereum Sepolia".
type NetworkFamily string

// NetworkClass tells mainnets and testnets apart
type NetworkClass string

const (
	NetworkClassMainnet NetworkClass = "mainnet"
	NetworkClassTestnet NetworkClass = "testnet"
	NetworkClassUnknown NetworkClass = "unknown"
)

// Valid reports whether the class is one a network table may assign
func (c NetworkClass) Valid() bool {
	return c == NetworkClassMainnet || c == NetworkClassTestnet
}

// DeploymentRecord is a single network/address pair read from the declared
// manifest or from a deployment artifact.
type DeploymentRecord struct {
	Network  string         `json:"network"`
	Address  common.Address `json:"address"`
	Contract string         `json:"contract,omitempty"` // artifact or manifest entry name
	Source   string         `json:"source"`             // declared, deployed
}

// ArtifactParseWarning describes a deployment artifact that was skipped
type ArtifactParseWarning struct {
	Network string `json:"network"`
	Path    string `json:"path"`
	Reason  string `json:"reason"`
}

func (w ArtifactParseWarning) String() string {
	return "skipped " + w.Path + ": " + w.Reason
}

// AuditResult is the two-way difference between declared and deployed records.
// Both lists are sorted by network then address.
type AuditResult struct {
	OnlyInDeclared []DeploymentRecord `json:"onlyInDeclared"`
	OnlyInDeployed []DeploymentRecord `json:"onlyInDeployed"`
	Matched        int                `json:"matched"`
}

// Clean reports whether both sources agree
func (r AuditResult) Clean() bool {
	return len(r.OnlyInDeclared) == 0 && len(r.OnlyInDeployed) == 0
}

// FamilyCoverage records which kinds of networks of a family hold deployments
type FamilyCoverage struct {
	Family     NetworkFamily `json:"family"`
	HasMainnet bool          `json:"hasMainnet"`
	HasTestnet bool          `json:"hasTestnet"`
	Mainnets   []string      `json:"mainnets"`
	Testnets   []string      `json:"testnets"`
	Unknown    []string      `json:"unknown,omitempty"` // networks the table can't classify
	Empty      []string      `json:"empty,omitempty"`   // networks without any deployment
}

// Complete reports whether the family is deployed on both a mainnet and a testnet
func (f FamilyCoverage) Complete() bool {
	return f.HasMainnet && f.HasTestnet
}

// CoverageReport holds one entry per family, in first-seen order
type CoverageReport struct {
	Families []FamilyCoverage `json:"families"`
}

// Get returns the coverage of a single family
func (r CoverageReport) Get(family NetworkFamily) (FamilyCoverage, bool) {
	for _, f := range r.Families {
		if f.Family == family {
			return f, true
		}
	}
	return FamilyCoverage{}, false
}

// ByFamily returns the report keyed by family
func (r CoverageReport) ByFamily() map[NetworkFamily]FamilyCoverage {
	out := make(map[NetworkFamily]FamilyCoverage, len(r.Families))
	for _, f := range r.Families {
		out[f.Family] = f
	}
	return out
}

// Incomplete returns the families missing either a mainnet or a testnet deployment
func (r CoverageReport) Incomplete() []FamilyCoverage {
	out := make([]FamilyCoverage, 0)
	for _, f := range r.Families {
		if !f.Complete() {
			out = append(out, f)
		}
	}
	return out
}
