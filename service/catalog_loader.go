package service

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/logging"
)

// CatalogLoaderImpl loads the ACC rule catalog from a JSON file.
type CatalogLoaderImpl struct {
	log *zap.SugaredLogger
}

// NewCatalogLoader creates a new catalog loader
func NewCatalogLoader() *CatalogLoaderImpl {
	return &CatalogLoaderImpl{log: logging.L()}
}

// Load reads and parses the ACC rules file. It returns nil when the file
// cannot be read or parsed; profile synthesis treats a nil catalog as
// "register no profiles at all".
func (l *CatalogLoaderImpl) Load(path string) *domain.RulesFile {
	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Errorf("Can't read ACC rules file %s: %v", path, err)
		return nil
	}

	var rulesFile domain.RulesFile
	if err := json.Unmarshal(data, &rulesFile); err != nil {
		l.log.Errorf("Can't parse ACC rules file %s: %v", path, err)
		return nil
	}

	return &rulesFile
}
