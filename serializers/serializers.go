// package serializers converts request payloads to the formats
// SageMaker inference containers accept, and response payloads back.
// Serializer and Deserializer pairs are plugged into predictors; the
// content type travels with the serializer so a predictor never has
// to guess.
package serializers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
)

// Serializer converts a payload to request bytes.
type Serializer interface {
	Serialize(v any) ([]byte, error)
	ContentType() string
}

// CSV serializes rows of values to text/csv. Accepted payloads:
// string and []byte pass through, []string is a single row,
// [][]string is a matrix, []float64 is a single row, [][]float64 is
// a matrix.
type CSV struct{}

func (CSV) ContentType() string {
	return "text/csv"
}

func (CSV) Serialize(v any) ([]byte, error) {
	switch data := v.(type) {
	case string:
		return []byte(data), nil
	case []byte:
		return data, nil
	case []string:
		return writeCSV([][]string{data})
	case [][]string:
		return writeCSV(data)
	case []float64:
		return writeCSV([][]string{floatRow(data)})
	case [][]float64:
		rows := make([][]string, len(data))
		for i, row := range data {
			rows[i] = floatRow(row)
		}
		return writeCSV(rows)
	default:
		return nil, NewUnsupportedPayloadError("text/csv", fmt.Sprintf("%T", v))
	}
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, NewSerializeError(err)
	}

	// inference containers expect rows without a trailing newline
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func floatRow(row []float64) []string {
	out := make([]string, len(row))
	for i, f := range row {
		out[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return out
}

// JSON serializes any payload with encoding/json. []byte payloads
// pass through untouched so pre-encoded documents are not double
// encoded.
type JSON struct{}

func (JSON) ContentType() string {
	return "application/json"
}

func (JSON) Serialize(v any) ([]byte, error) {
	if data, ok := v.([]byte); ok {
		return data, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, NewSerializeError(fmt.Errorf("json.Marshal: %w", err))
	}
	return data, nil
}

// Bytes passes raw payloads through as application/octet-stream.
type Bytes struct{}

func (Bytes) ContentType() string {
	return "application/octet-stream"
}

func (Bytes) Serialize(v any) ([]byte, error) {
	switch data := v.(type) {
	case []byte:
		return data, nil
	case string:
		return []byte(data), nil
	default:
		return nil, NewUnsupportedPayloadError("application/octet-stream", fmt.Sprintf("%T", v))
	}
}

// RecordIO serializes dense float32 matrices to the
// recordio-protobuf format the first-party algorithms consume.
// Accepted payloads: [][]float32 and [][]float64.
type RecordIO struct{}

func (RecordIO) ContentType() string {
	return "application/x-recordio-protobuf"
}

func (RecordIO) Serialize(v any) ([]byte, error) {
	var rows [][]float32
	switch data := v.(type) {
	case [][]float32:
		rows = data
	case [][]float64:
		rows = make([][]float32, len(data))
		for i, row := range data {
			rows[i] = make([]float32, len(row))
			for j, f := range row {
				rows[i][j] = float32(f)
			}
		}
	default:
		return nil, NewUnsupportedPayloadError(
			"application/x-recordio-protobuf", fmt.Sprintf("%T", v))
	}

	var buf bytes.Buffer
	if err := WriteDenseFloat32Matrix(&buf, rows, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
