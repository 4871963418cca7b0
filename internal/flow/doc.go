// Package flow drives the questionnaire: it asks the question under the
// cursor, classifies every input line as a control token or answer text, and
// moves the cursor through an explicit transition table.
//
// # Transition table
//
// Every (cursor, token) pair resolves to exactly one named Rule, which gives
// the next cursor position and the side effect on the in-progress answer
// buffer:
//
//	back    cursor > 0   cursor-1   discard buffer
//	back    cursor == 0  cursor     append the line as text
//	skip    any          cursor+1   discard buffer
//	done    any          cursor+1   commit buffer to the answer
//	finish  any          N          discard buffer
//	pause   any          cursor     save snapshot and stop
//	text    any          cursor     append the line
//
// The cursor reaching N (the question count) ends the loop.
package flow
