// Package app wires mazesolve together: load a maze picture or text file,
// discretize it, solve it with each configured strategy, write result
// images and print a comparison.
package app
