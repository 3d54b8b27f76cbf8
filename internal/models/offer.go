package models

// SourceFreeWork tags every record extracted from the supported site.
const SourceFreeWork = "FreeWork"

// RatePeriod is the billing period of a normalized rate.
type RatePeriod string

const (
	PeriodDay   RatePeriod = "day"
	PeriodWeek  RatePeriod = "week"
	PeriodMonth RatePeriod = "month"
	PeriodYear  RatePeriod = "year"
	PeriodHour  RatePeriod = "hour"
)

// Rate is a monetary rate recovered from free text. Value stays nil when the
// raw text carries no parseable number.
type Rate struct {
	Raw      string     `json:"raw" yaml:"raw"`
	Value    *float64   `json:"value,omitempty" yaml:"value,omitempty"`
	Currency string     `json:"currency,omitempty" yaml:"currency,omitempty"`
	Period   RatePeriod `json:"period,omitempty" yaml:"period,omitempty"`
}

// Evidence labels.
const (
	EvidenceTitle       = "title"
	EvidenceRate        = "rate"
	EvidenceLocation    = "location"
	EvidenceContract    = "contract"
	EvidenceStartDate   = "startDate"
	EvidenceDuration    = "duration"
	EvidenceExperience  = "experience"
	EvidencePostedAt    = "postedAt"
	EvidenceRemote      = "remote"
	EvidenceDescription = "description"
	EvidenceTags        = "tags"
	EvidenceContext     = "context"
	EvidencePricing     = "pricing"
	EvidenceGeo         = "geo"
)

// Evidence justifies one inferred field with the text it came from.
type Evidence struct {
	Label    string `json:"label" yaml:"label"`
	Snippet  string `json:"snippet" yaml:"snippet"`
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
}

// Offer is the normalized job offer returned by the detector.
type Offer struct {
	Source          string     `json:"source" yaml:"source"`
	URL             string     `json:"url" yaml:"url"`
	Title           string     `json:"title,omitempty" yaml:"title,omitempty"`
	Company         string     `json:"company,omitempty" yaml:"company,omitempty"`
	Location        string     `json:"location,omitempty" yaml:"location,omitempty"`
	IsRemote        bool       `json:"isRemote,omitempty" yaml:"isRemote,omitempty"`
	RemotePolicy    string     `json:"remotePolicy,omitempty" yaml:"remotePolicy,omitempty"`
	ContractType    string     `json:"contractType,omitempty" yaml:"contractType,omitempty"`
	Rate            *Rate      `json:"rate,omitempty" yaml:"rate,omitempty"`
	StartDate       string     `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	Duration        string     `json:"duration,omitempty" yaml:"duration,omitempty"`
	ExperienceLevel string     `json:"experienceLevel,omitempty" yaml:"experienceLevel,omitempty"`
	Stack           []string   `json:"stack" yaml:"stack"`
	Description     string     `json:"description,omitempty" yaml:"description,omitempty"`
	PostedAt        string     `json:"postedAt,omitempty" yaml:"postedAt,omitempty"`
	Tags            []string   `json:"tags" yaml:"tags"`
	Confidence      float64    `json:"confidence" yaml:"confidence"`
	Evidence        []Evidence `json:"evidence" yaml:"evidence"`
}
