// Package application wires storage, the search engine and logging together
// and runs a single search: read the whole file, filter its lines, print the
// matches in file order.
package application
