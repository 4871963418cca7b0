// Package questionnaire holds end-to-end tests that drive the whole
// application through scripted console input.
package questionnaire
