// Package memberlist implements an intrusive doubly linked list.
//
// The links of an intrusive list live inside the elements themselves, so pushing, inserting,
// erasing and splicing never allocate, and an element can be found in its list without a lookup.
// An element type embeds one Link per list it can belong to, and a Linker type tells the List
// which one to use, so a single value can be on several lists at once.
//
// Misuse, such as popping from an empty list or passing one list's iterator to another, panics
// before anything is changed.
package memberlist
