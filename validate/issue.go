package validate

import "fmt"

// Issue is one path-qualified validation finding.
type Issue struct {
	Path     string
	Expected string
	Received string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (expected %s, received %s)", i.Path, i.Message, i.Expected, i.Received)
}

// maxCollectedIssues bounds how many issues a single validateCapture call
// accumulates: the walk stops collecting once the count exceeds it, so at
// most maxCollectedIssues+1 issues are returned.
const maxCollectedIssues = 100

// collector accumulates issues until their count exceeds
// maxCollectedIssues and tracks the node count during the walk; depth is
// passed along as an argument of validateNode.
type collector struct {
	issues    []Issue
	nodeCount int
}

func (c *collector) add(path, expected, received, message string) {
	if len(c.issues) > maxCollectedIssues {
		return
	}
	c.issues = append(c.issues, Issue{Path: path, Expected: expected, Received: received, Message: message})
}

func (c *collector) full() bool {
	return len(c.issues) > maxCollectedIssues
}
