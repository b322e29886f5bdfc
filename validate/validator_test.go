package validate_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcp-tool-shop-org/websketch-ir/validate"
)

func decode(t *testing.T, text string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &v))
	return v
}

const validMinimalJSON = `{
	"version": "0.1",
	"url": "https://example.com",
	"timestamp_ms": 1700000000000,
	"viewport": {"w_px": 1920, "h_px": 1080, "aspect": 1.777},
	"compiler": {"name": "websketch-ir", "version": "0.2.1", "options_hash": "test"},
	"root": {"id": "", "role": "PAGE", "bbox": [0, 0, 1, 1], "interactive": false, "visible": true}
}`

func TestValidateCaptureAcceptsMinimal(t *testing.T) {
	issues := validate.ValidateCapture(decode(t, validMinimalJSON), nil)
	require.Empty(t, issues)
}

func TestValidateCaptureRejectsNonObject(t *testing.T) {
	issues := validate.ValidateCapture(decode(t, `"not an object"`), nil)
	require.Len(t, issues, 1)
	require.Equal(t, "root", issues[0].Path)
}

func TestValidateCaptureReportsMissingTopLevelFields(t *testing.T) {
	issues := validate.ValidateCapture(decode(t, `{}`), nil)

	paths := make(map[string]bool)
	for _, iss := range issues {
		paths[iss.Path] = true
	}
	for _, want := range []string{"version", "root.url", "root.timestamp_ms", "root.viewport", "root.compiler", "root.root"} {
		require.True(t, paths[want], "expected missing-field issue at %q, got %+v", want, issues)
	}
}

func TestValidateCaptureRejectsUnknownRole(t *testing.T) {
	cap := strings.Replace(validMinimalJSON, `"role": "PAGE"`, `"role": "WIDGET"`, 1)
	issues := validate.ValidateCapture(decode(t, cap), nil)

	found := false
	for _, iss := range issues {
		if iss.Path == "root.role" {
			found = true
			require.Equal(t, `"WIDGET"`, iss.Received)
		}
	}
	require.True(t, found, "expected a root.role issue, got %+v", issues)
}

func TestValidateCaptureRejectsWrongBBoxLength(t *testing.T) {
	cap := strings.Replace(validMinimalJSON, `"bbox": [0, 0, 1, 1]`, `"bbox": [0, 0, 1]`, 1)
	issues := validate.ValidateCapture(decode(t, cap), nil)

	found := false
	for _, iss := range issues {
		if iss.Path == "root.bbox" {
			found = true
		}
	}
	require.True(t, found, "expected a root.bbox issue, got %+v", issues)
}

func TestValidateCaptureRejectsNonNumericBBoxElement(t *testing.T) {
	cap := strings.Replace(validMinimalJSON, `"bbox": [0, 0, 1, 1]`, `"bbox": [0, 0, "wide", 1]`, 1)
	issues := validate.ValidateCapture(decode(t, cap), nil)

	found := false
	for _, iss := range issues {
		if iss.Path == "root.bbox[2]" {
			found = true
		}
	}
	require.True(t, found, "expected a root.bbox[2] issue, got %+v", issues)
}

// buttonSiblings builds a capture whose root has n BUTTON children, for
// exercising the node-count resource limit (scenario S3).
func buttonSiblings(n int) string {
	var children []string
	for i := 0; i < n; i++ {
		children = append(children, fmt.Sprintf(`{"id":"","role":"BUTTON","bbox":[0,%f,0.1,0.02],"interactive":true,"visible":true}`, float64(i)/float64(n)))
	}
	return fmt.Sprintf(`{
		"version": "0.1",
		"url": "https://example.com",
		"timestamp_ms": 1700000000000,
		"viewport": {"w_px": 1920, "h_px": 1080, "aspect": 1.777},
		"compiler": {"name": "websketch-ir", "version": "0.2.1", "options_hash": "test"},
		"root": {"id":"","role":"PAGE","bbox":[0,0,1,1],"interactive":false,"visible":true,"children":[%s]}
	}`, strings.Join(children, ","))
}

func TestValidateCaptureEnforcesMaxNodes(t *testing.T) {
	lim := validate.Limits{MaxNodes: 50, MaxDepth: 50}
	issues := validate.ValidateCapture(decode(t, buttonSiblings(60)), &lim)

	found := false
	for _, iss := range issues {
		if strings.Contains(iss.Message, "node count limit exceeded") {
			found = true
		}
	}
	require.True(t, found, "expected a node count limit issue, got %+v", issues)
}

func TestValidateCaptureEnforcesMaxDepth(t *testing.T) {
	nested := `{"id":"","role":"TEXT","bbox":[0,0,0.1,0.1],"interactive":false,"visible":true}`
	for i := 0; i < 5; i++ {
		nested = fmt.Sprintf(`{"id":"","role":"SECTION","bbox":[0,0,1,1],"interactive":false,"visible":true,"children":[%s]}`, nested)
	}
	cap := strings.Replace(validMinimalJSON, `"root": {"id": "", "role": "PAGE", "bbox": [0, 0, 1, 1], "interactive": false, "visible": true}`, `"root": `+nested, 1)

	lim := validate.Limits{MaxNodes: 10_000, MaxDepth: 2}
	issues := validate.ValidateCapture(decode(t, cap), &lim)

	found := false
	for _, iss := range issues {
		if strings.Contains(iss.Message, "depth limit exceeded") {
			found = true
		}
	}
	require.True(t, found, "expected a depth limit issue, got %+v", issues)
}

func TestIssueStringFormat(t *testing.T) {
	iss := validate.Issue{Path: "root.role", Expected: "a role", Received: `"WIDGET"`, Message: "unknown role"}
	require.Equal(t, `root.role: unknown role (expected a role, received "WIDGET")`, iss.String())
}
