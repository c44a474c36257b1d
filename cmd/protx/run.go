package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"protx.lol/chk"
	"protx.lol/config"
	"protx.lol/hex"
	"protx.lol/log"
	"protx.lol/payload"
	"protx.lol/special"
)

func decodeHex(s string) (b []byte, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if b, err = hex.Dec(s); err != nil {
		err = errors.Wrap(err, "payload is not valid hex")
	}
	return
}

func decode(w io.Writer, t payload.Type, h string, cfg *config.C) (err error) {
	var b []byte
	if b, err = decodeHex(h); err != nil {
		return
	}
	var p payload.I
	if p, err = special.Decode(t, b); err != nil {
		return
	}
	log.T.S(p)
	var j []byte
	if j, err = p.MarshalJSON(); err != nil {
		return
	}
	var out []byte
	if out, err = render(j, cfg); err != nil {
		return
	}
	_, err = w.Write(out)
	return
}

func encode(w io.Writer, t payload.Type, r io.Reader) (err error) {
	var j []byte
	if j, err = io.ReadAll(r); chk.E(err) {
		return
	}
	var p payload.I
	if p, err = special.FromJSON(t, j); err != nil {
		return
	}
	var b []byte
	if _, b, err = special.Encode(p); err != nil {
		return
	}
	_, err = fmt.Fprintln(w, hex.Enc(b))
	return
}

func validate(w io.Writer, t payload.Type, h string) (err error) {
	var b []byte
	if b, err = decodeHex(h); err != nil {
		return
	}
	var p payload.I
	if p, err = special.Decode(t, b); err != nil {
		return
	}
	if err = p.Validate(); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "valid %s payload, %d bytes\n", t, len(b))
	return
}

// render formats the JSON projection of a payload as configured.
func render(j []byte, cfg *config.C) (out []byte, err error) {
	switch cfg.Format {
	case "yaml":
		return toYAML(j)
	default:
		if !cfg.Indent {
			return append(j, '\n'), nil
		}
		buf := new(bytes.Buffer)
		if err = json.Indent(buf, j, "", "  "); err != nil {
			return
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}
}

// toYAML converts JSON to block style YAML keeping the key order.
func toYAML(j []byte) (out []byte, err error) {
	var n yaml.Node
	if err = yaml.Unmarshal(j, &n); err != nil {
		return
	}
	blockStyle(&n)
	return yaml.Marshal(&n)
}

// blockStyle drops the flow style and the quoted keys that JSON input
// leaves on the nodes. Value scalars keep their quoting.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		n.Style = 0
		for i := 0; i < len(n.Content); i += 2 {
			n.Content[i].Style = 0
		}
	case yaml.SequenceNode:
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
