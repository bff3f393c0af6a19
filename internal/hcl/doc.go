// Package hcl loads pipeline plans written in HCL and translates them into
// the format-agnostic config model. It ships an embedded default plan and
// supports a variables block whose attributes are exposed to later blocks as
// var.<name>.
package hcl
