package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// MemReport is a hierarchical memory usage report for a structure and its parts.
type MemReport struct {
	Name       string      `json:"name"`
	TotalBytes int         `json:"total_bytes"`
	Children   []MemReport `json:"children,omitempty"`
}

// JSON returns a JSON string representation of the MemReport.
func (r MemReport) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error": "%s"}`, err.Error())
	}
	return string(b)
}

// String renders the report as an indented tree with raw byte counts.
func (r MemReport) String() string {
	var sb strings.Builder
	r.buildString(&sb, 0, func(n int) string { return fmt.Sprintf("%d bytes", n) })
	return sb.String()
}

// Human renders the report like String but with IEC units (KiB, MiB).
func (r MemReport) Human() string {
	var sb strings.Builder
	r.buildString(&sb, 0, func(n int) string { return humanize.IBytes(uint64(n)) })
	return sb.String()
}

func (r MemReport) buildString(sb *strings.Builder, indent int, format func(int) string) {
	prefix := strings.Repeat("  ", indent)
	sb.WriteString(fmt.Sprintf("%s- %s: %s\n", prefix, r.Name, format(r.TotalBytes)))
	for _, child := range r.Children {
		child.buildString(sb, indent+1, format)
	}
}

// ChildrenBytes sums TotalBytes of the direct children.
func (r MemReport) ChildrenBytes() int {
	total := 0
	for _, c := range r.Children {
		total += c.TotalBytes
	}
	return total
}
