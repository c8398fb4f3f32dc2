package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Protocol error codes surfaced to callers.
const (
	CodeInvalidRequest = mcp.INVALID_REQUEST
	CodeInternalError  = mcp.INTERNAL_ERROR
)

var (
	// ErrDuplicateToolName indicates two definitions share a name.
	ErrDuplicateToolName = errors.New("duplicate tool name")

	// ErrOwnershipMismatch indicates a group's claimed names and published
	// definitions disagree.
	ErrOwnershipMismatch = errors.New("tool ownership mismatch")

	// ErrUnknownTool indicates an invocation named a tool nobody owns.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidDefinition indicates a definition that cannot be published.
	ErrInvalidDefinition = errors.New("invalid tool definition")
)

// DuplicateToolNameError names both groups that published Name.
type DuplicateToolNameError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateToolNameError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("duplicate tool name %q published twice by group %q", e.Name, e.First)
	}
	return fmt.Sprintf("duplicate tool name %q published by groups %q and %q", e.Name, e.First, e.Second)
}

func (e *DuplicateToolNameError) Unwrap() error { return ErrDuplicateToolName }

// OwnershipMismatchError reports a routable-but-undiscoverable or
// discoverable-but-unroutable tool.
type OwnershipMismatchError struct {
	Group  string
	Name   string
	Reason string
}

func (e *OwnershipMismatchError) Error() string {
	return fmt.Sprintf("group %q: tool %q %s", e.Group, e.Name, e.Reason)
}

func (e *OwnershipMismatchError) Unwrap() error { return ErrOwnershipMismatch }

// UnknownToolError is returned by Dispatch when no group owns Name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

// DispatchError is a group failure translated into a protocol error class.
type DispatchError struct {
	Tool    string
	Code    int
	Message string
	Err     error
}

func (e *DispatchError) Error() string {
	return e.Message
}

func (e *DispatchError) Unwrap() error { return e.Err }

// notFounder is implemented by backend errors that know their HTTP status.
type notFounder interface {
	NotFound() bool
}

// translate maps a group failure into the two caller-visible classes.
func translate(tool string, err error) *DispatchError {
	code := CodeInternalError
	if isNotFound(err) {
		code = CodeInvalidRequest
	}
	return &DispatchError{
		Tool:    tool,
		Code:    code,
		Message: "Tool execution failed: " + err.Error(),
		Err:     err,
	}
}

func isNotFound(err error) bool {
	var nf notFounder
	if errors.As(err, &nf) && nf.NotFound() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}

// ProtocolError reduces any Dispatch error to a JSON-RPC code and message.
func ProtocolError(err error) (int, string) {
	var unknown *UnknownToolError
	if errors.As(err, &unknown) {
		return CodeInvalidRequest, unknown.Error()
	}
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Code, de.Message
	}
	return CodeInternalError, err.Error()
}
