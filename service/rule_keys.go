package service

import (
	"bufio"
	"os"
	"strings"

	"github.com/onec-tools/bslbridge/domain"
)

// LoadRuleKeys reads a newline-separated list of BSL Language Server rule
// keys. Blank lines and lines starting with # are skipped; order is
// preserved.
func LoadRuleKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewCatalogError("can't read BSL rule keys file "+path, err)
	}
	defer f.Close()

	var keys []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.NewCatalogError("can't read BSL rule keys file "+path, err)
	}

	return keys, nil
}
