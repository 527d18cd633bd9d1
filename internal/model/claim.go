package model

// ClaimForScoring is the flat snapshot of a claim consumed by the engines.
// It is rebuilt from the claim record on every call and never written back.
type ClaimForScoring struct {
	ID string `json:"id"`

	PlaintiffName    string `json:"plaintiff_name,omitempty"`
	PlaintiffIDNum   string `json:"plaintiff_id_num,omitempty"`
	PlaintiffPhone   string `json:"plaintiff_phone,omitempty"`
	PlaintiffAddress string `json:"plaintiff_address,omitempty"`

	DefendantName    string `json:"defendant_name,omitempty"`
	DefendantAddress string `json:"defendant_address,omitempty"`

	AmountNIS    float64       `json:"amount_nis,omitempty"`    // Claimed amount in NIS
	Summary      string        `json:"summary,omitempty"`       // Free-text facts summary
	Category     ClaimCategory `json:"category,omitempty"`      // Claim category
	IncidentDate string        `json:"incident_date,omitempty"` // ISO date (YYYY-MM-DD)

	Timeline []TimelineEntry `json:"timeline,omitempty"` // Dated events from the interview
	Demands  []string        `json:"demands,omitempty"`  // Relief descriptions

	EvidenceCount int  `json:"evidence_count"`
	HasSignature  bool `json:"has_signature"`

	HasWrittenAgreement bool `json:"has_written_agreement"`
	HasPriorNotice      bool `json:"has_prior_notice"`
	HasProofOfPayment   bool `json:"has_proof_of_payment"`
}

// TimelineEntry is one dated fact asserted by the plaintiff.
type TimelineEntry struct {
	Date        string `json:"date,omitempty"` // ISO date (YYYY-MM-DD)
	Description string `json:"description"`
}

// ClaimCategory classifies the dispute for eligibility and rule purposes.
type ClaimCategory string

const (
	CategoryConsumer  ClaimCategory = "consumer"  // Defective goods, refunds
	CategoryContract  ClaimCategory = "contract"  // Breach of a private contract
	CategoryServices  ClaimCategory = "services"  // Poorly performed services
	CategoryProperty  ClaimCategory = "property"  // Property damage
	CategoryNeighbors ClaimCategory = "neighbors" // Neighbor disputes
	CategoryRental    ClaimCategory = "rental"    // Deposits, rental disputes
)
