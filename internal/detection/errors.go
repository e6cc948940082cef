package detection

import "fmt"

// HostTraversalError reports that a candidate's subtree could not be read
// from the host document.
type HostTraversalError struct {
	NodeID   string
	NodeName string
	Err      error
}

func (e *HostTraversalError) Error() string {
	return fmt.Sprintf("failed to traverse node %s (%q): %v", e.NodeID, e.NodeName, e.Err)
}

func (e *HostTraversalError) Unwrap() error {
	return e.Err
}
