package serializers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// Record is the protobuf record the first-party algorithms exchange:
// named feature tensors, optional label tensors, and an optional
// record id. Encoding is done directly with protowire against the
// published field numbers, so no generated code is involved.
//
// Field numbers: features=1, label=2, uid=3, metadata=4,
// configuration=5. Map entries use key=1, value=2. Value wraps one
// of float32_tensor=2, float64_tensor=3, int32_tensor=4. Tensors
// hold values=1, keys=2, shape=3, all packed.
type Record struct {
	Features      map[string]*Tensor
	Label         map[string]*Tensor
	UID           string
	Metadata      string
	Configuration string
}

// Tensor holds one tensor of a record. Exactly one of the value
// slices should be populated; Keys and Shape describe sparse and
// multi-dimensional tensors and stay empty for dense vectors.
type Tensor struct {
	Float32Values []float32
	Float64Values []float64
	Int32Values   []int32
	Keys          []uint64
	Shape         []uint64
}

const recordIOMagic = 0xced7230a

// Marshal encodes the record to protobuf wire format.
func (r *Record) Marshal() []byte {
	var b []byte
	b = appendTensorMap(b, 1, r.Features)
	b = appendTensorMap(b, 2, r.Label)
	if r.UID != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, r.UID)
	}
	if r.Metadata != "" {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, r.Metadata)
	}
	if r.Configuration != "" {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendString(b, r.Configuration)
	}
	return b
}

func appendTensorMap(b []byte, field protowire.Number, m map[string]*Tensor) []byte {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := protowire.AppendTag(nil, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, name)
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendBytes(entry, marshalValue(m[name]))

		b = protowire.AppendTag(b, field, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

func marshalValue(t *Tensor) []byte {
	var field protowire.Number
	switch {
	case len(t.Float64Values) > 0:
		field = 3
	case len(t.Int32Values) > 0:
		field = 4
	default:
		field = 2
	}

	b := protowire.AppendTag(nil, field, protowire.BytesType)
	return protowire.AppendBytes(b, marshalTensor(t, field))
}

func marshalTensor(t *Tensor, field protowire.Number) []byte {
	var b []byte

	var packed []byte
	switch field {
	case 2:
		for _, v := range t.Float32Values {
			packed = protowire.AppendFixed32(packed, math.Float32bits(v))
		}
	case 3:
		for _, v := range t.Float64Values {
			packed = protowire.AppendFixed64(packed, math.Float64bits(v))
		}
	case 4:
		for _, v := range t.Int32Values {
			packed = protowire.AppendVarint(packed, uint64(uint32(v)))
		}
	}
	if len(packed) > 0 {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}

	if len(t.Keys) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, packedVarints(t.Keys))
	}
	if len(t.Shape) > 0 {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, packedVarints(t.Shape))
	}
	return b
}

func packedVarints(vals []uint64) []byte {
	var b []byte
	for _, v := range vals {
		b = protowire.AppendVarint(b, v)
	}
	return b
}

// UnmarshalRecord decodes a single protobuf record payload.
func UnmarshalRecord(data []byte) (*Record, error) {
	rec := &Record{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, NewMalformedRecordError("bad field tag")
		}
		data = data[n:]

		switch num {
		case 1, 2:
			entry, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, NewMalformedRecordError("bad map entry")
			}
			data = data[n:]

			name, tensor, err := parseMapEntry(entry)
			if err != nil {
				return nil, err
			}
			if num == 1 {
				if rec.Features == nil {
					rec.Features = map[string]*Tensor{}
				}
				rec.Features[name] = tensor
			} else {
				if rec.Label == nil {
					rec.Label = map[string]*Tensor{}
				}
				rec.Label[name] = tensor
			}
		case 3, 4, 5:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, NewMalformedRecordError("bad string field")
			}
			data = data[n:]
			switch num {
			case 3:
				rec.UID = s
			case 4:
				rec.Metadata = s
			case 5:
				rec.Configuration = s
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, NewMalformedRecordError("bad unknown field")
			}
			data = data[n:]
		}
	}
	return rec, nil
}

func parseMapEntry(data []byte) (string, *Tensor, error) {
	var name string
	var tensor *Tensor

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", nil, NewMalformedRecordError("bad map entry tag")
		}
		data = data[n:]

		switch num {
		case 1:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", nil, NewMalformedRecordError("bad map key")
			}
			data = data[n:]
			name = s
		case 2:
			body, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return "", nil, NewMalformedRecordError("bad map value")
			}
			data = data[n:]

			t, err := parseValue(body)
			if err != nil {
				return "", nil, err
			}
			tensor = t
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", nil, NewMalformedRecordError("bad map entry field")
			}
			data = data[n:]
		}
	}

	if tensor == nil {
		tensor = &Tensor{}
	}
	return name, tensor, nil
}

func parseValue(data []byte) (*Tensor, error) {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, NewMalformedRecordError("bad value tag")
		}
		data = data[n:]

		switch num {
		case 2, 3, 4:
			body, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, NewMalformedRecordError("bad tensor")
			}
			data = data[n:]
			return parseTensor(body, num)
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, NewMalformedRecordError("bad value field")
			}
			data = data[n:]
		}
	}
	return &Tensor{}, nil
}

func parseTensor(data []byte, kind protowire.Number) (*Tensor, error) {
	t := &Tensor{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, NewMalformedRecordError("bad tensor tag")
		}
		data = data[n:]

		if typ != protowire.BytesType {
			return nil, NewMalformedRecordError("tensor fields must be packed")
		}
		packed, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, NewMalformedRecordError("bad packed field")
		}
		data = data[n:]

		switch num {
		case 1:
			if err := parsePackedValues(t, packed, kind); err != nil {
				return nil, err
			}
		case 2:
			vals, err := parsePackedVarints(packed)
			if err != nil {
				return nil, err
			}
			t.Keys = vals
		case 3:
			vals, err := parsePackedVarints(packed)
			if err != nil {
				return nil, err
			}
			t.Shape = vals
		}
	}
	return t, nil
}

func parsePackedValues(t *Tensor, packed []byte, kind protowire.Number) error {
	switch kind {
	case 2:
		for len(packed) > 0 {
			v, n := protowire.ConsumeFixed32(packed)
			if n < 0 {
				return NewMalformedRecordError("bad float32 value")
			}
			packed = packed[n:]
			t.Float32Values = append(t.Float32Values, math.Float32frombits(v))
		}
	case 3:
		for len(packed) > 0 {
			v, n := protowire.ConsumeFixed64(packed)
			if n < 0 {
				return NewMalformedRecordError("bad float64 value")
			}
			packed = packed[n:]
			t.Float64Values = append(t.Float64Values, math.Float64frombits(v))
		}
	case 4:
		for len(packed) > 0 {
			v, n := protowire.ConsumeVarint(packed)
			if n < 0 {
				return NewMalformedRecordError("bad int32 value")
			}
			packed = packed[n:]
			t.Int32Values = append(t.Int32Values, int32(uint32(v)))
		}
	}
	return nil
}

func parsePackedVarints(packed []byte) ([]uint64, error) {
	var vals []uint64
	for len(packed) > 0 {
		v, n := protowire.ConsumeVarint(packed)
		if n < 0 {
			return nil, NewMalformedRecordError("bad varint")
		}
		packed = packed[n:]
		vals = append(vals, v)
	}
	return vals, nil
}

// WriteRecordIO frames a payload in the recordio format: magic,
// little-endian length, payload, zero padding to a 4-byte boundary.
func WriteRecordIO(w io.Writer, payload []byte) error {
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], recordIOMagic)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}

	if pad := (4 - len(payload)%4) % 4; pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("w.Write: %w", err)
		}
	}
	return nil
}

// ReadRecordIO reads the next framed payload. Returns io.EOF at a
// clean end of stream.
func ReadRecordIO(r io.Reader) ([]byte, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, NewMalformedRecordError("truncated header")
	}

	if binary.LittleEndian.Uint32(header[0:4]) != recordIOMagic {
		return nil, NewMalformedRecordError("bad magic number")
	}

	length := binary.LittleEndian.Uint32(header[4:8])
	padded := (length + 3) &^ 3
	buf := make([]byte, padded)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, NewMalformedRecordError("truncated payload")
	}
	return buf[:length], nil
}

// ReadRecords parses a whole recordio-protobuf stream.
func ReadRecords(r io.Reader) ([]*Record, error) {
	var records []*Record
	for {
		payload, err := ReadRecordIO(r)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		rec, err := UnmarshalRecord(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// WriteDenseFloat32Matrix writes one record per row with the row
// under the "values" feature, mirroring the layout the first-party
// algorithms train on. labels may be nil; when present it must have
// one entry per row.
func WriteDenseFloat32Matrix(w io.Writer, rows [][]float32, labels []float32) error {
	if labels != nil && len(labels) != len(rows) {
		return NewMalformedRecordError(fmt.Sprintf(
			"%d labels for %d rows", len(labels), len(rows)))
	}

	for i, row := range rows {
		rec := &Record{
			Features: map[string]*Tensor{
				"values": {Float32Values: row},
			},
		}
		if labels != nil {
			rec.Label = map[string]*Tensor{
				"values": {Float32Values: []float32{labels[i]}},
			}
		}
		if err := WriteRecordIO(w, rec.Marshal()); err != nil {
			return err
		}
	}
	return nil
}
