// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package form defines the format-agnostic questionnaire model: an ordered
// list of sections, each holding an ordered list of question texts.
//
// The form is the single source of truth for the interaction loop and the
// report builder. Both only ever see the flattened []Question view, so the
// order in which sections and questions are declared is the order in which
// they are asked and rendered.
//
// The built-in form ships as an HCL document embedded in the binary (see
// default.hcl). Concrete loaders, such as the HCL one, live in separate
// packages and implement the Loader interface.
package form
