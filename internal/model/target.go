// Package model defines the data structures shared by detection, advice and output.
package model

// Path represents a file system path.
type Path string

// Target identifies the directories a detection run inspects.
type Target struct {
	Root Path // absolute project root; every relative probe resolves against it
	Home Path // user home directory, empty when it could not be resolved
}
