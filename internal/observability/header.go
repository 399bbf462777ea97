package observability

import (
	"fmt"
	"net/http"
)

// Timing is one Server-Timing metric. Zero Ms and empty Desc emit nothing.
type Timing struct {
	Name string
	Ms   float64
	Desc string
}

func (t Timing) String() string {
	switch {
	case t.Ms > 0 && t.Desc != "":
		return fmt.Sprintf("%s;dur=%.2f;desc=%q", t.Name, t.Ms, t.Desc)
	case t.Ms > 0:
		return fmt.Sprintf("%s;dur=%.2f", t.Name, t.Ms)
	case t.Desc != "":
		return fmt.Sprintf("%s;desc=%q", t.Name, t.Desc)
	}
	return ""
}

// AppendServerTiming adds one Server-Timing header value per non-empty timing.
func AppendServerTiming(w http.ResponseWriter, timings ...Timing) {
	for _, t := range timings {
		if s := t.String(); s != "" {
			w.Header().Add("Server-Timing", s)
		}
	}
}

func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms > 0 {
		w.Header().Set(key, fmt.Sprintf("%.2f", ms))
	}
}
