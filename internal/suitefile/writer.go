// Package suitefile synthesizes the temporary XML suite descriptor handed to
// TestNG when the configuration names packages but no explicit suites or
// test classes, and manages the lifecycle of the files it creates.
package suitefile

import (
	"fmt"
	"strings"
)

// Fixed descriptor layout. TestNG validates the document against its DTD, so
// the header and element names must match verbatim.
const (
	suiteHeader = `<?xml version="1.0" encoding="UTF-8"?>` +
		`<!DOCTYPE suite SYSTEM "https://testng.org/testng-1.0.dtd">` +
		`<suite name="bld Default Suite" verbose="2">` +
		`<test name="All Packages">` +
		`<packages>`
	suiteFooter = `</packages></test></suite>`
)

// filePattern is the temp-file name pattern for synthesized descriptors.
const filePattern = "testng-*.xml"

// defaultSuite renders the minimal suite document declaring one <package>
// element per package name, in the given order.
func defaultSuite(packages []string) []byte {
	var b strings.Builder
	b.WriteString(suiteHeader)
	for _, p := range packages {
		fmt.Fprintf(&b, `<package name=%q/>`, p)
	}
	b.WriteString(suiteFooter)
	return []byte(b.String())
}
