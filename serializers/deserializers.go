package serializers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Deserializer parses response bytes into a Go value.
type Deserializer interface {
	Deserialize(r io.Reader) (any, error)
	Accept() string
}

// CSVDeserializer parses text/csv responses into [][]string.
type CSVDeserializer struct{}

func (CSVDeserializer) Accept() string {
	return "text/csv"
}

func (CSVDeserializer) Deserialize(r io.Reader) (any, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, NewDeserializeError(fmt.Errorf("csv.ReadAll: %w", err))
	}
	return rows, nil
}

// JSONDeserializer parses application/json responses into the
// generic any shapes produced by encoding/json.
type JSONDeserializer struct{}

func (JSONDeserializer) Accept() string {
	return "application/json"
}

func (JSONDeserializer) Deserialize(r io.Reader) (any, error) {
	var v any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, NewDeserializeError(fmt.Errorf("json.Decode: %w", err))
	}
	return v, nil
}

// BytesDeserializer returns the raw response body.
type BytesDeserializer struct{}

func (BytesDeserializer) Accept() string {
	return "application/octet-stream"
}

func (BytesDeserializer) Deserialize(r io.Reader) (any, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, NewDeserializeError(fmt.Errorf("io.Copy: %w", err))
	}
	return buf.Bytes(), nil
}

// RecordIODeserializer parses recordio-protobuf responses into
// []*Record.
type RecordIODeserializer struct{}

func (RecordIODeserializer) Accept() string {
	return "application/x-recordio-protobuf"
}

func (RecordIODeserializer) Deserialize(r io.Reader) (any, error) {
	return ReadRecords(r)
}
