// Package board holds the quiz board's front-end logic shared by the terminal
// and web front ends: which panel is active, how a quiz list load resolves
// into displayable state, and how a create submission resolves.
package board
