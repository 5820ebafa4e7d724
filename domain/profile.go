package domain

// ACCRule is one row of the ACC rule catalog.
type ACCRule struct {
	Code               string `json:"code"`
	Active             bool   `json:"isActive"`
	NeedForCertificate bool   `json:"isNeedForCertificate"`
}

// RulesFile is the parsed ACC rule catalog.
type RulesFile struct {
	Rules []ACCRule `json:"rules"`
}

// Built-in quality profile names.
const (
	ProfileACCFullCheck = "ACC - full check"
	ProfileACCCertified = "ACC - 1C:Certified"
	ProfileAllRules     = "BSL - all rules"
)

// RuleActivation activates one rule of one repository inside a profile.
type RuleActivation struct {
	Repository string `json:"repository" yaml:"repository"`
	RuleKey    string `json:"rule_key" yaml:"rule_key"`
}

// Profile is a named, ordered set of rule activations registered with the
// host as one built-in quality profile. Activations keep catalog order;
// BSL Language Server keys, when present, follow the catalog keys.
type Profile struct {
	Name        string           `json:"name" yaml:"name"`
	Language    string           `json:"language" yaml:"language"`
	Activations []RuleActivation `json:"activations" yaml:"activations"`
}

// ProfileSink receives synthesized profiles. A profile is submitted as a
// whole; the sink owns rule-key resolution against its repositories.
type ProfileSink interface {
	RegisterProfile(profile Profile) error
}
