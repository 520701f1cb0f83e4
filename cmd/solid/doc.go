// Command solid runs the SOLID principle demos.
//
// Each demo prints a "bad" (principle-violating) and a "good"
// (principle-following) implementation of the same toy domain side by side.
//
// Usage
//
//	solid            # run every demo
//	solid srp dip    # run specific demos by principle name
//	solid -list      # print the available demo names
//
// Demos are registered in a registry.Registry under their principle name and
// looked up by key, so an unknown name fails with the registry's NotFound
// error and the list of valid keys.
//
// Exit codes: 0 on success, 1 if a demo fails, 2 on usage errors or an
// unknown demo name.
package main
