// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// field is one reported value. Order is preserved in both output formats.
type field struct {
	name  string
	value interface{}
}

type printer struct {
	w    io.Writer
	json bool
}

func (p *printer) print(fields ...field) error {
	if !p.json {
		for _, f := range fields {
			if _, err := fmt.Fprintf(p.w, "%-14s %v\n", f.name+":", textValue(f.value)); err != nil {
				return err
			}
		}
		return nil
	}

	w := jwriter.NewWriter()
	obj := w.Object()
	for _, f := range fields {
		writeValue(obj.Name(f.name), f.value)
	}
	obj.End()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "encode json")
	}
	_, err := fmt.Fprintf(p.w, "%s\n", w.Bytes())
	return err
}

func textValue(v interface{}) interface{} {
	if addr, ok := v.(uintptr); ok {
		return fmt.Sprintf("%#x", addr)
	}
	return v
}

func writeValue(w *jwriter.Writer, v interface{}) {
	switch v := v.(type) {
	case string:
		w.String(v)
	case bool:
		w.Bool(v)
	case int:
		w.Int(v)
	case uint32:
		w.Int(int(v))
	case uint64:
		if v > math.MaxInt {
			w.Float64(float64(v))
		} else {
			w.Int(int(v))
		}
	case uintptr:
		w.String(fmt.Sprintf("%#x", v))
	case []string:
		arr := w.Array()
		for _, s := range v {
			arr.String(s)
		}
		arr.End()
	case nil:
		w.Null()
	default:
		w.String(fmt.Sprint(v))
	}
}
