package loo

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/pssmlab/loorun/pkg/loo/model"
)

// ExtractIdentifiers parses one completed search artifact: it skips exactly
// one header record, then takes the first whitespace-delimited field of every
// subsequent record, in file order.
//
// The caller is responsible for ordering: the artifact must only be read
// after the search-phase barrier has cleared.
func ExtractIdentifiers(path string) (model.IdentifierList, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrArtifactMissing, path)
		}

		return nil, errors.Wrapf(err, "unable to open artifact %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "unable to read artifact %s", path)
		}
		// A zero-byte artifact has no header to skip: the job terminated
		// without writing anything usable.
		return nil, errors.Wrapf(ErrArtifactMalformed, "%s: missing header record", path)
	}

	ids := model.IdentifierList{}
	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, errors.Wrapf(ErrArtifactMalformed, "%s: record %d", path, line)
		}
		ids = append(ids, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read artifact %s", path)
	}

	return ids, nil
}
