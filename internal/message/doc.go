// Package message manipulates commit message text: stripping previously
// generated sections, wrapping generated text, and composing the final
// message that is written back to a commit.
//
// A generated section is introduced by the [Marker] line. [Strip] removes
// such a section according to the extraction mode the text was produced
// with, so running the tool repeatedly never stacks generated sections on
// top of each other. [Compose] is the other direction: it wraps freshly
// generated text to the commit message width and either appends it after a
// marker line or replaces the message outright.
package message
