package schemacore

import (
	"io"

	eng "github.com/hollowpine/schemacore/internal/engine"
	"github.com/hollowpine/schemacore/node"
)

// DetectJSONDuplicateKeysBytes detects duplicate object keys in a JSON byte
// slice ahead of schema validation, delegating to internal/engine's
// streaming scanner.
func DetectJSONDuplicateKeysBytes(data []byte, strict Strictness, maxIssues int) (node.Issues, error) {
	mode := toEngineDup(strict.OnDuplicateKey)
	si, err := eng.DetectJSONDuplicateKeysBytes(data, mode, maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

// DetectJSONDuplicateKeysReader is the streaming-reader counterpart of
// DetectJSONDuplicateKeysBytes.
func DetectJSONDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) (node.Issues, error) {
	mode := toEngineDup(strict.OnDuplicateKey)
	si, err := eng.DetectJSONDuplicateKeysReader(r, mode, maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) node.Issues {
	var iss node.Issues
	for _, s := range si {
		iss = node.AppendIssues(iss, node.Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}
