// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varlinkservice implements org.varlink.service, the
// introspection interface every Varlink service exposes: GetInfo and
// GetInterfaceDescription, plus the standard error vocabulary servers use
// to reject malformed or unsupported calls.
package varlinkservice

import (
	"context"
	"sort"

	"github.com/varlinkrpc/varlink-go"
	"github.com/varlinkrpc/varlink-go/idl"
)

const InterfaceName = "org.varlink.service"

// Info is the GetInfo reply shape: the vendor/product/version/URL
// quadruple plus the list of interface names this service implements.
type Info struct {
	Vendor     string   `json:"vendor"`
	Product    string   `json:"product"`
	Version    string   `json:"version"`
	URL        string   `json:"url"`
	Interfaces []string `json:"interfaces"`
}

// InterfaceDescription is the GetInterfaceDescription reply shape: the
// canonical re-emitted IDL text for one named interface.
type InterfaceDescription struct {
	Description string `json:"description"`
}

// Registry holds the set of interfaces a Service exposes, keyed by fully
// qualified name, for GetInterfaceDescription lookups.
type Registry struct {
	Info       Info
	interfaces map[string]idl.Interface
}

// NewRegistry builds an empty Registry with the given service metadata.
func NewRegistry(vendor, product, version, url string) *Registry {
	return &Registry{
		Info: Info{Vendor: vendor, Product: product, Version: version, URL: url},
		interfaces: map[string]idl.Interface{
			InterfaceName: {Name: InterfaceName},
		},
	}
}

// Register adds iface to the registry, making it discoverable via GetInfo
// and GetInterfaceDescription.
func (r *Registry) Register(iface idl.Interface) {
	r.interfaces[iface.Name] = iface
}

// interfaceNames returns every registered interface name, sorted.
func (r *Registry) interfaceNames() []string {
	names := make([]string, 0, len(r.interfaces))
	for name := range r.interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandleVarlink implements varlink.Handler for org.varlink.service calls.
// Any other method is answered with MethodNotFound, which writes the error
// reply and closes the call, so a dispatcher that routes application
// interfaces must do so before handing a call to the Registry.
func (r *Registry) HandleVarlink(ctx context.Context, call *varlink.ServerCall) error {
	switch call.Method() {
	case InterfaceName + ".GetInfo":
		info := r.Info
		info.Interfaces = r.interfaceNames()
		return call.Reply(info)
	case InterfaceName + ".GetInterfaceDescription":
		var params struct {
			Interface string `json:"interface"`
		}
		if err := decode(call.Parameters(), &params); err != nil {
			return call.Fail(ErrInvalidParameter, InvalidParameterParams{Parameter: "interface"})
		}
		iface, ok := r.interfaces[params.Interface]
		if !ok {
			return call.Fail(ErrInterfaceNotFound, InterfaceNotFoundParams{Interface: params.Interface})
		}
		return call.Reply(InterfaceDescription{Description: iface.String()})
	default:
		return call.Fail(ErrMethodNotFound, MethodNotFoundParams{Method: call.Method()})
	}
}

func decode(raw []byte, v any) error {
	return varlink.DecodeRaw(raw, v)
}
