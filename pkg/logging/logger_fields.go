package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Ontology field helpers

func Component(name string) Field {
	return String("component", name)
}

func Concept(name string) Field {
	return String("concept", name)
}

func QueryKey(raw string) Field {
	return String("query", raw)
}

func QueryKind(kind string) Field {
	return String("query_kind", kind)
}

func SenseKey(key string) Field {
	return String("sense_key", key)
}

func BuildID(id string) Field {
	return String("build_id", id)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func File(path string) Field {
	return String("file", path)
}
