package encoding

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Scheme identifies a backend wire encoding.
type Scheme string

const (
	// SchemePlantUML is the encoding expected by PlantUML-protocol servers.
	SchemePlantUML Scheme = "plantuml"

	// SchemeKroki is the encoding expected by Kroki-protocol servers.
	SchemeKroki Scheme = "kroki"
)

// plantumlAlphabet is PlantUML's 64-character mapping. The ordering differs
// from standard base64 on purpose: digits first, then upper case, then lower
// case, then '-' and '_'.
const plantumlAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// Encode converts diagram source text into the payload string for the given
// scheme. Payloads from different schemes are never interchangeable.
func Encode(source string, scheme Scheme) (string, error) {
	switch scheme {
	case SchemePlantUML:
		return PlantUML(source)
	case SchemeKroki:
		return Kroki(source)
	default:
		return "", fmt.Errorf("unknown encoding scheme: %s", scheme)
	}
}

// PlantUML encodes diagram source for PlantUML-protocol servers: raw DEFLATE
// at best compression, then PlantUML's 6-bit alphabet applied MSB-first to
// each 3-byte group. A final partial group is zero-padded and still emits
// four output characters, matching the reference text encoder.
func PlantUML(source string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create deflate stream: %w", err)
	}
	if _, err := w.Write([]byte(source)); err != nil {
		return "", fmt.Errorf("compress source: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("flush deflate stream: %w", err)
	}
	return encode64(buf.Bytes()), nil
}

// DecodePlantUML is the inverse of PlantUML. It exists to verify the
// round-trip property; the server never decodes payloads at runtime.
func DecodePlantUML(payload string) (string, error) {
	raw, err := decode64(payload)
	if err != nil {
		return "", err
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("inflate payload: %w", err)
	}
	return string(data), nil
}

// Kroki encodes diagram source for Kroki-protocol servers: zlib at best
// compression, then URL-safe base64 ('-'/'_') with '=' padding stripped.
func Kroki(source string) (string, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create zlib stream: %w", err)
	}
	if _, err := w.Write([]byte(source)); err != nil {
		return "", fmt.Errorf("compress source: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("flush zlib stream: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeKroki is the inverse of Kroki, provided for round-trip verification.
func DecodeKroki(payload string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode base64 payload: %w", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("open zlib stream: %w", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("inflate payload: %w", err)
	}
	return string(data), nil
}

// encode64 maps each 3-byte group onto 4 characters of the PlantUML alphabet,
// most significant bits first. Partial trailing groups are padded with zero
// bytes rather than with '=' markers.
func encode64(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data) + 2) / 3 * 4)
	for i := 0; i < len(data); i += 3 {
		var b1, b2, b3 byte
		b1 = data[i]
		if i+1 < len(data) {
			b2 = data[i+1]
		}
		if i+2 < len(data) {
			b3 = data[i+2]
		}
		sb.WriteByte(plantumlAlphabet[b1>>2])
		sb.WriteByte(plantumlAlphabet[((b1&0x03)<<4)|(b2>>4)])
		sb.WriteByte(plantumlAlphabet[((b2&0x0F)<<2)|(b3>>6)])
		sb.WriteByte(plantumlAlphabet[b3&0x3F])
	}
	return sb.String()
}

// decode64 reverses encode64. Zero padding added during encoding survives as
// trailing zero bytes; the DEFLATE reader ignores bytes past the final block,
// so the round-trip still reproduces the original source exactly.
func decode64(payload string) ([]byte, error) {
	if len(payload)%4 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 4", len(payload))
	}
	out := make([]byte, 0, len(payload)/4*3)
	for i := 0; i < len(payload); i += 4 {
		var vals [4]byte
		for j := 0; j < 4; j++ {
			idx := strings.IndexByte(plantumlAlphabet, payload[i+j])
			if idx < 0 {
				return nil, fmt.Errorf("invalid payload character %q", payload[i+j])
			}
			vals[j] = byte(idx)
		}
		out = append(out,
			(vals[0]<<2)|(vals[1]>>4),
			(vals[1]<<4)|(vals[2]>>2),
			(vals[2]<<6)|vals[3],
		)
	}
	return out, nil
}
