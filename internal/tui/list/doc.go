// Package listview provides a scrolling card list for Bubble Tea programs.
//
// Items may render to any number of lines. The list keeps the selected item
// on screen by moving its first visible item, and only renders the items
// that fit in the viewport.
package listview
