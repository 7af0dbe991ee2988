package logger

import (
	"io"
	"log"
)

// Null returns a logger writing nowhere.
func Null() *log.Logger {
	return log.New(io.Discard, "", log.LstdFlags)
}

func Default() *log.Logger {
	return log.Default()
}

// Prefixed returns a logger writing to w with "[name] " prefix.
func Prefixed(w io.Writer, name string) *log.Logger {
	return log.New(w, "["+name+"] ", log.LstdFlags|log.Lmsgprefix)
}
