package service

import (
	"go.uber.org/zap"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/logging"
)

// ProfileBuilder materializes the three built-in quality profiles from
// the ACC rule catalog and the BSL Language Server rule keys.
type ProfileBuilder struct {
	rulesFile *domain.RulesFile
	bslKeys   []string
	log       *zap.SugaredLogger
}

// NewProfileBuilder creates a new profile builder. rulesFile may be nil
// when the catalog failed to load.
func NewProfileBuilder(rulesFile *domain.RulesFile, bslKeys []string) *ProfileBuilder {
	return &ProfileBuilder{
		rulesFile: rulesFile,
		bslKeys:   bslKeys,
		log:       logging.L(),
	}
}

// Profiles returns the three profiles in registration order, or nil when
// the catalog is absent. Profile registration is all-or-nothing: with no
// catalog, not even the BSL-only portion is produced.
func (b *ProfileBuilder) Profiles() []domain.Profile {
	if b.rulesFile == nil {
		return nil
	}

	return []domain.Profile{
		b.fullCheckProfile(),
		b.certifiedProfile(),
		b.allRulesProfile(),
	}
}

// Register submits all profiles to the sink. A sink failure stops
// registration and is returned to the caller; rule-key resolution is the
// sink's concern, not validated here.
func (b *ProfileBuilder) Register(sink domain.ProfileSink) error {
	profiles := b.Profiles()
	if profiles == nil {
		b.log.Info("ACC rules file is not available, skipping built-in quality profiles")
		return nil
	}

	for _, profile := range profiles {
		if err := sink.RegisterProfile(profile); err != nil {
			return err
		}
	}
	return nil
}

func (b *ProfileBuilder) fullCheckProfile() domain.Profile {
	return domain.Profile{
		Name:        domain.ProfileACCFullCheck,
		Language:    domain.LanguageKey,
		Activations: b.accActivations(func(r domain.ACCRule) bool { return r.Active }),
	}
}

func (b *ProfileBuilder) certifiedProfile() domain.Profile {
	return domain.Profile{
		Name:        domain.ProfileACCCertified,
		Language:    domain.LanguageKey,
		Activations: b.accActivations(func(r domain.ACCRule) bool { return r.NeedForCertificate }),
	}
}

// allRulesProfile activates the active catalog rules plus every BSL
// Language Server key, catalog keys first.
func (b *ProfileBuilder) allRulesProfile() domain.Profile {
	activations := b.accActivations(func(r domain.ACCRule) bool { return r.Active })
	for _, key := range b.bslKeys {
		activations = append(activations, domain.RuleActivation{
			Repository: domain.RepositoryBSL,
			RuleKey:    key,
		})
	}
	return domain.Profile{
		Name:        domain.ProfileAllRules,
		Language:    domain.LanguageKey,
		Activations: activations,
	}
}

// accActivations selects catalog rules by predicate, preserving catalog
// order.
func (b *ProfileBuilder) accActivations(selected func(domain.ACCRule) bool) []domain.RuleActivation {
	var activations []domain.RuleActivation
	for _, rule := range b.rulesFile.Rules {
		if !selected(rule) {
			continue
		}
		activations = append(activations, domain.RuleActivation{
			Repository: domain.RepositoryACC,
			RuleKey:    rule.Code,
		})
	}
	return activations
}
