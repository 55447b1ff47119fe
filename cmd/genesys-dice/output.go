package main

import (
	"encoding/json"
	"io"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}
