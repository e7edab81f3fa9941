package id

// NanoIDGen generates url safe random string ids of a fixed length.
// It is safe for concurrent use.
type NanoIDGen func() string
