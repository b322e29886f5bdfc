// Package validate implements the hand-rolled schema checker described in
// the design: a preorder walk over an already-JSON-decoded value that
// collects path-qualified issues against resource limits, plus the strict
// parseCapture entry point that classifies those issues into the
// werrors.Code taxonomy.
package validate

import (
	"fmt"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// ValidateCapture walks x (the result of decoding arbitrary JSON into
// interface{}) against limits and returns every issue found. It never
// panics and never returns an error — issues are the only output. Callers
// that need a typed Capture and a single classified failure should use
// ParseCapture instead.
func ValidateCapture(x interface{}, limits *Limits) []Issue {
	lim := limitsOrDefault(limits)
	c := &collector{}

	obj, ok := asObject(x)
	if !ok {
		c.add("root", "object", describeType(x), "capture must be a JSON object")
		return c.issues
	}

	checkVersion(c, obj)
	checkString(c, obj, "url", "root.url")
	checkNumber(c, obj, "timestamp_ms", "root.timestamp_ms")
	checkViewport(c, obj)
	checkCompiler(c, obj)

	rootVal, present := obj["root"]
	if !present {
		c.add("root.root", "node", "missing", "root is required")
	} else {
		validateNode(c, rootVal, "root", 0, lim)
	}

	return c.issues
}

func checkVersion(c *collector, obj map[string]interface{}) {
	v, present := obj["version"]
	if !present {
		c.add("version", "string", "missing", "version is required")
		return
	}
	s, ok := v.(string)
	if !ok {
		c.add("version", "string", describeType(v), "version must be a string")
		return
	}
	if !ir.IsSupportedSchemaVersion(s) {
		c.add("version", "one of supported schema versions", fmt.Sprintf("%q", s), "unsupported schema version")
	}
}

func checkString(c *collector, obj map[string]interface{}, key, path string) {
	v, present := obj[key]
	if !present {
		c.add(path, "string", "missing", key+" is required")
		return
	}
	if _, ok := v.(string); !ok {
		c.add(path, "string", describeType(v), key+" must be a string")
	}
}

func checkNumber(c *collector, obj map[string]interface{}, key, path string) {
	v, present := obj[key]
	if !present {
		c.add(path, "number", "missing", key+" is required")
		return
	}
	if _, ok := v.(float64); !ok {
		c.add(path, "number", describeType(v), key+" must be a number")
	}
}

func checkViewport(c *collector, obj map[string]interface{}) {
	v, present := obj["viewport"]
	if !present {
		c.add("root.viewport", "object", "missing", "viewport is required")
		return
	}
	vp, ok := asObject(v)
	if !ok {
		c.add("root.viewport", "object", describeType(v), "viewport must be an object")
		return
	}
	checkNumber(c, vp, "w_px", "root.viewport.w_px")
	checkNumber(c, vp, "h_px", "root.viewport.h_px")
	checkNumber(c, vp, "aspect", "root.viewport.aspect")
}

func checkCompiler(c *collector, obj map[string]interface{}) {
	v, present := obj["compiler"]
	if !present {
		c.add("root.compiler", "object", "missing", "compiler is required")
		return
	}
	cm, ok := asObject(v)
	if !ok {
		c.add("root.compiler", "object", describeType(v), "compiler must be an object")
		return
	}
	checkString(c, cm, "name", "root.compiler.name")
	checkString(c, cm, "version", "root.compiler.version")
	checkString(c, cm, "options_hash", "root.compiler.options_hash")
}

// validateNode validates a single node value at path, with depth counting
// from 0 at the root. It always reports depth/count overruns, but stops
// recursing into children once either limit is exceeded, and stops
// collecting entirely once the issue count passes maxCollectedIssues.
func validateNode(c *collector, x interface{}, path string, depth int, lim Limits) {
	if c.full() {
		return
	}

	c.nodeCount++
	if c.nodeCount > lim.MaxNodes {
		c.add(path, fmt.Sprintf("<= %d nodes", lim.MaxNodes), fmt.Sprintf("%d nodes", c.nodeCount), "node count limit exceeded")
		return
	}
	if depth > lim.MaxDepth {
		c.add(path, fmt.Sprintf("depth <= %d", lim.MaxDepth), fmt.Sprintf("depth %d", depth), "depth limit exceeded")
		return
	}

	obj, ok := asObject(x)
	if !ok {
		c.add(path, "object", describeType(x), "node must be an object")
		return
	}

	if roleVal, present := obj["role"]; !present {
		c.add(path+".role", "string", "missing", "role is required")
	} else if role, ok := roleVal.(string); !ok {
		c.add(path+".role", "string", describeType(roleVal), "role must be a string")
	} else if !ir.IsValidRole(role) {
		c.add(path+".role", "one of the closed role vocabulary", fmt.Sprintf("%q", role), "unknown role")
	}

	validateBBox(c, obj, path)

	checkBool(c, obj, "interactive", path+".interactive")
	checkBool(c, obj, "visible", path+".visible")
	checkString(c, obj, "id", path+".id")

	if textVal, present := obj["text"]; present {
		validateText(c, textVal, path+".text")
	}

	if childrenVal, present := obj["children"]; present {
		children, ok := childrenVal.([]interface{})
		if !ok {
			c.add(path+".children", "array", describeType(childrenVal), "children must be an array")
			return
		}
		for i, child := range children {
			if c.full() {
				return
			}
			validateNode(c, child, fmt.Sprintf("%s.children[%d]", path, i), depth+1, lim)
		}
	}
}

func validateBBox(c *collector, obj map[string]interface{}, path string) {
	v, present := obj["bbox"]
	if !present {
		c.add(path+".bbox", "array of 4 numbers", "missing", "bbox is required")
		return
	}
	arr, ok := v.([]interface{})
	if !ok {
		c.add(path+".bbox", "array of 4 numbers", describeType(v), "bbox must be an array")
		return
	}
	if len(arr) != 4 {
		c.add(path+".bbox", "array of 4 numbers", fmt.Sprintf("array of %d elements", len(arr)), "bbox must have exactly 4 elements")
		return
	}
	for i, el := range arr {
		if _, ok := el.(float64); !ok {
			c.add(fmt.Sprintf("%s.bbox[%d]", path, i), "number", describeType(el), "bbox element must be a number")
		}
	}
}

func validateText(c *collector, v interface{}, path string) {
	obj, ok := asObject(v)
	if !ok {
		c.add(path, "object", describeType(v), "text must be an object")
		return
	}
	kindVal, present := obj["kind"]
	if !present {
		c.add(path+".kind", "string", "missing", "text.kind is required")
		return
	}
	if _, ok := kindVal.(string); !ok {
		c.add(path+".kind", "string", describeType(kindVal), "text.kind must be a string")
	}
}

func checkBool(c *collector, obj map[string]interface{}, key, path string) {
	v, present := obj[key]
	if !present {
		c.add(path, "boolean", "missing", key+" is required")
		return
	}
	if _, ok := v.(bool); !ok {
		c.add(path, "boolean", describeType(v), key+" must be a boolean")
	}
}

func asObject(x interface{}) (map[string]interface{}, bool) {
	m, ok := x.(map[string]interface{})
	return m, ok
}

func describeType(x interface{}) string {
	switch v := x.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return fmt.Sprintf("%q", v)
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
