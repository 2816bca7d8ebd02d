// Package sample is a small User/Address/Building model with hand written
// lenses. Tests and the example program use it as a realistic whole type.
package sample
