package jsonbind

// Version is reported by the tools built on the codec.
const Version = "v0.1.0"
