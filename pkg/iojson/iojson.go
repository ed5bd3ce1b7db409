// Package iojson holds helpers for reading command input and writing JSON
// output from a command line interface perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape written when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	// json.Marshal escapes the strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders an Error. If marshaling fails a hand-built blob noting
// the marshal error is returned instead.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteError writes an Error to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported on
// ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, jsonError("error marshaling output", err))
		if werr != nil {
			return werr
		}
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
