// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlinkservice

// The standard org.varlink.service error vocabulary. Every Varlink service
// is expected to report these for the corresponding failure, regardless of
// which application interface the call targeted.
const (
	ErrInterfaceNotFound     = InterfaceName + ".InterfaceNotFound"
	ErrMethodNotFound        = InterfaceName + ".MethodNotFound"
	ErrMethodNotImplemented  = InterfaceName + ".MethodNotImplemented"
	ErrInvalidParameter      = InterfaceName + ".InvalidParameter"
	ErrPermissionDenied      = InterfaceName + ".PermissionDenied"
	ErrExpectedMore          = InterfaceName + ".ExpectedMore"
)

// InterfaceNotFoundParams carries the unknown interface name.
type InterfaceNotFoundParams struct {
	Interface string `json:"interface"`
}

// MethodNotFoundParams carries the unresolved fully-qualified method name.
type MethodNotFoundParams struct {
	Method string `json:"method"`
}

// MethodNotImplementedParams carries a method name the interface declares
// but the server has no handler for.
type MethodNotImplementedParams struct {
	Method string `json:"method"`
}

// InvalidParameterParams carries the name of the offending parameter
// field, when known.
type InvalidParameterParams struct {
	Parameter string `json:"parameter"`
}

// PermissionDeniedParams is intentionally empty: the standard error
// carries no detail beyond its name.
type PermissionDeniedParams struct{}

// ExpectedMoreParams is intentionally empty.
type ExpectedMoreParams struct{}
