package serializers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSerialize(t *testing.T) {
	tests := []struct {
		name      string
		payload   any
		expected  string
		expectErr bool
	}{
		{name: "string passthrough", payload: "1,2,3", expected: "1,2,3"},
		{name: "bytes passthrough", payload: []byte("4,5,6"), expected: "4,5,6"},
		{name: "single row", payload: []string{"a", "b", "c"}, expected: "a,b,c"},
		{name: "matrix", payload: [][]string{{"a", "b"}, {"c", "d"}}, expected: "a,b\nc,d"},
		{name: "float row", payload: []float64{1.5, 2, 3}, expected: "1.5,2,3"},
		{name: "float matrix", payload: [][]float64{{1, 2}, {3, 4}}, expected: "1,2\n3,4"},
		{name: "unsupported", payload: 42, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := CSV{}
			assert.Equal(t, "text/csv", s.ContentType())

			data, err := s.Serialize(tt.payload)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestCSVDeserialize(t *testing.T) {
	d := CSVDeserializer{}
	assert.Equal(t, "text/csv", d.Accept())

	v, err := d.Deserialize(bytes.NewBufferString("0.2,0.8\n0.9,0.1\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0.2", "0.8"}, {"0.9", "0.1"}}, v)
}

func TestJSONSerialize(t *testing.T) {
	s := JSON{}
	assert.Equal(t, "application/json", s.ContentType())

	data, err := s.Serialize(map[string]any{"instances": []int{1, 2}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"instances":[1,2]}`, string(data))

	raw := []byte(`{"already":"encoded"}`)
	data, err = s.Serialize(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestJSONDeserialize(t *testing.T) {
	d := JSONDeserializer{}
	assert.Equal(t, "application/json", d.Accept())

	v, err := d.Deserialize(bytes.NewBufferString(`{"predictions":[0.7]}`))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	preds, ok := m["predictions"].([]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("0.7"), preds[0])
}

func TestBytesRoundTrip(t *testing.T) {
	s := Bytes{}
	d := BytesDeserializer{}
	assert.Equal(t, "application/octet-stream", s.ContentType())
	assert.Equal(t, "application/octet-stream", d.Accept())

	data, err := s.Serialize("raw payload")
	require.NoError(t, err)

	v, err := d.Deserialize(bytes.NewBuffer(data))
	require.NoError(t, err)
	assert.Equal(t, []byte("raw payload"), v)

	_, err = s.Serialize(3.14)
	require.Error(t, err)
}

func TestRecordIOSerializer(t *testing.T) {
	s := RecordIO{}
	assert.Equal(t, "application/x-recordio-protobuf", s.ContentType())

	data, err := s.Serialize([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	records, err := ReadRecords(bytes.NewBuffer(data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []float32{1, 2, 3}, records[0].Features["values"].Float32Values)
	assert.Equal(t, []float32{4, 5, 6}, records[1].Features["values"].Float32Values)

	// float64 rows downcast to float32
	data, err = s.Serialize([][]float64{{0.5, 1.5}})
	require.NoError(t, err)
	records, err = ReadRecords(bytes.NewBuffer(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []float32{0.5, 1.5}, records[0].Features["values"].Float32Values)

	_, err = s.Serialize("not a matrix")
	require.Error(t, err)
}
