// Package hcl provides the concrete HCL implementation of form.Loader. It is
// responsible for file discovery, parsing, and translating the decoded
// schema into the format-agnostic form model, using cty to type-check the
// question lists.
package hcl
