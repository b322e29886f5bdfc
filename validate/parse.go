package validate

import (
	"encoding/json"
	"strings"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
	"github.com/mcp-tool-shop-org/websketch-ir/werrors"
)

// ParseCapture is the strict entry point: it parses text as JSON, runs
// ValidateCapture, and classifies any failure into the most specific
// werrors.Code using the priority Version > Limit > General. On success it
// returns a typed, already-valid Capture.
func ParseCapture(text string, limits *Limits) (*ir.Capture, error) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, werrors.Wrap(werrors.CodeInvalidJSON, "input is not valid JSON", err)
	}

	issues := ValidateCapture(decoded, limits)
	if len(issues) == 0 {
		var cap ir.Capture
		if err := json.Unmarshal([]byte(text), &cap); err != nil {
			// ValidateCapture already confirmed the shape; a failure here
			// would mean the two validators disagree, which is a bug in
			// this package rather than bad input.
			return nil, werrors.Wrap(werrors.CodeInternal, "capture passed validation but failed to decode", err)
		}
		return &cap, nil
	}

	if ver, ok := findVersionIssue(issues); ok {
		return nil, &werrors.Error{
			Code:     werrors.CodeUnsupportedVersion,
			Message:  "unsupported schema version",
			Path:     ver.Path,
			Expected: ver.Expected,
			Received: ver.Received,
			Issues:   toWErrorIssues(issues),
		}
	}

	if exceededLimit(issues) {
		return nil, &werrors.Error{
			Code:    werrors.CodeLimitExceeded,
			Message: "resource limit exceeded while parsing capture",
			Issues:  toWErrorIssues(issues),
		}
	}

	return nil, &werrors.Error{
		Code:    werrors.CodeInvalidCapture,
		Message: "capture failed schema validation",
		Issues:  toWErrorIssues(issues),
	}
}

func findVersionIssue(issues []Issue) (Issue, bool) {
	for _, iss := range issues {
		if iss.Path == "version" && iss.Received != `"0.1"` {
			return iss, true
		}
	}
	return Issue{}, false
}

func exceededLimit(issues []Issue) bool {
	for _, iss := range issues {
		if strings.Contains(iss.Message, "limit exceeded") {
			return true
		}
	}
	return false
}

func toWErrorIssues(issues []Issue) []werrors.Issue {
	out := make([]werrors.Issue, len(issues))
	for i, iss := range issues {
		out[i] = werrors.Issue{Path: iss.Path, Expected: iss.Expected, Received: iss.Received, Message: iss.Message}
	}
	return out
}
