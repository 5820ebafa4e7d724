package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/onec-tools/bslbridge/domain"
)

// ReportParserImpl implements the ReportParser interface
type ReportParserImpl struct{}

// NewReportParser creates a new report parser
func NewReportParser() *ReportParserImpl {
	return &ReportParserImpl{}
}

// Parse reads the report file as UTF-8 text and decodes it into an
// AnalysisInfo. Read failures and parse failures carry distinct error
// codes so the ingestion pipeline can report them separately.
func (p *ReportParserImpl) Parse(path string) (*domain.AnalysisInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewReportReadError(fmt.Sprintf("can't read analysis report file %s", path), err)
	}

	var info domain.AnalysisInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, domain.NewReportParseError(fmt.Sprintf("can't parse analysis report file %s", path), err)
	}

	return &info, nil
}
