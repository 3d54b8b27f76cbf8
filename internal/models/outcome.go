package models

// Status is the terminal classification of one detection run.
type Status string

const (
	StatusOK             Status = "ok"
	StatusOutOfScope     Status = "out_of_scope"
	StatusNoOffers       Status = "no_offers"
	StatusContentDelayed Status = "content_delayed"
)

// PageType tells whether the document described one offer or many.
type PageType string

const (
	PageDetail  PageType = "detail"
	PageList    PageType = "list"
	PageUnknown PageType = "unknown"
)

// Reasons reported in diagnostics. Downstream consumers match on these tokens.
const (
	ReasonNoStructure  = "structure introuvable"
	ReasonNoTitle      = "titre absent"
	ReasonPartial      = "informations partielles"
	ReasonSingleCard   = "une seule carte détectée"
	ReasonAtypical     = "structure atypique"
	ReasonDelayed      = "contenu tardif"
	ReasonInsufficient = "contenu insuffisant"
)

// Diagnostics describe how the detector reached its verdict.
type Diagnostics struct {
	Attempts int    `json:"attempts" yaml:"attempts"`
	WaitedMS int64  `json:"waitedMs" yaml:"waitedMs"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Outcome is the public result of a detection run.
type Outcome struct {
	Status      Status       `json:"status" yaml:"status"`
	Message     string       `json:"message" yaml:"message"`
	PageType    PageType     `json:"pageType" yaml:"pageType"`
	Offers      []Offer      `json:"offers" yaml:"offers"`
	Diagnostics *Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}
