package mesa

import (
	"fmt"
	"time"
)

// Info is the package metadata record. It is built exactly once at load
// time and never mutated afterwards; accessors hand out copies.
type Info struct {
	Title     string
	Version   string
	License   string
	Copyright string
}

// info is populated during package initialization. The copyright year is
// the only value read from the environment, and only at load time.
var info = newInfo(time.Now())

func newInfo(now time.Time) Info {
	return Info{
		Title:     "mesa",
		Version:   "0.9.0",
		License:   "Apache 2.0",
		Copyright: fmt.Sprintf("Copyright %d Project Mesa Team", now.Year()),
	}
}

// Metadata returns a copy of the package metadata record.
func Metadata() Info { return info }

// Title returns the distribution name.
func Title() string { return info.Title }

// Version returns the framework version.
func Version() string { return info.Version }

// License returns the license identifier.
func License() string { return info.License }

// Copyright returns the copyright line, including the year the package was
// loaded.
func Copyright() string { return info.Copyright }
