// Package storage loads the text contents a search runs over. Contents are
// read whole; there is no streaming and no caching between reads.
package storage
