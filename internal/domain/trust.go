package domain

// TrustLevel classifies how much a source domain's reputation should offset
// textual risk signals.
type TrustLevel string

// Trust level constants.
const (
	TrustLevelHigh    TrustLevel = "HIGH"
	TrustLevelLow     TrustLevel = "LOW"
	TrustLevelUnknown TrustLevel = "UNKNOWN"
)

// DomainType categorizes a recognized source domain.
type DomainType string

// Domain type constants.
const (
	DomainTypeJobPortal     DomainType = "JOB_PORTAL"
	DomainTypeGovernment    DomainType = "GOVERNMENT_ORGANIZATION"
	DomainTypeTechCompany   DomainType = "TECH_COMPANY"
	DomainTypeLocalCompany  DomainType = "LOCAL_COMPANY"
	DomainTypeNewsSite      DomainType = "NEWS_SITE"
	DomainTypeNGO           DomainType = "NGO"
	DomainTypeTrustedDomain DomainType = "TRUSTED_DOMAIN"
	DomainTypeUnknown       DomainType = "UNKNOWN"
)

// URLTrustInfo is the classification of a source URL's domain.
// Invariant: IsTrusted implies DomainType != DomainTypeUnknown.
type URLTrustInfo struct {
	IsTrusted   bool       `json:"is_trusted"`
	TrustLevel  TrustLevel `json:"trust_level"`
	DomainType  DomainType `json:"domain_type"`
	Domain      string     `json:"domain,omitempty"`
	TrustReason string     `json:"trust_reason"`
}
