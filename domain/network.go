package domain

// ChainProfile is what the inspector knows about a chain id
type ChainProfile struct {
	ChainId               ChainId  `json:"chainId"`
	DisplayName           string   `json:"displayName"`
	NativeSymbol          string   `json:"nativeSymbol"`
	ReferenceTokenAddress *Address `json:"referenceTokenAddress,omitempty"`
}

// IsKnown reports whether the profile came from the registry table
func (p ChainProfile) IsKnown() bool {
	return p.ReferenceTokenAddress != nil
}

type NetworkUseCase interface {
	// Resolve never fails: unknown ids get a synthesized "unknown network" profile
	Resolve(ChainId) ChainProfile
	List() []ChainProfile
}
