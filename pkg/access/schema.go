package access

import "sort"

// Values is the logical representation of a message payload: a field-name
// to value mapping. Canonical value types produced by decode are uint64,
// int64, []byte, string, []uint64, map[string]interface{} and
// []map[string]interface{}.
type Values = map[string]interface{}

// Kind classifies a field descriptor.
type Kind int

const (
	// KindUint is an unsigned little-endian integer of Bits width.
	KindUint Kind = iota

	// KindInt is a signed little-endian integer of Bits width.
	KindInt

	// KindEnum is an unsigned integer restricted to a closed value set.
	KindEnum

	// KindBytes is a fixed-size byte blob of Size bytes.
	KindBytes

	// KindBytesTail is a byte blob consuming the remainder of the payload.
	KindBytesTail

	// KindString is a UTF-8 string consuming the remainder of the payload.
	KindString

	// KindBits is a bit-packed group over Size bytes. The group is loaded
	// little-endian and BitFields are assigned most-significant first, which
	// reproduces the byte-swapped bit layouts of the published formats.
	// Subfield values appear directly in the enclosing scope.
	KindBits

	// KindStruct is a nested structure stored as a sub-map under Name.
	KindStruct

	// KindList is a repeated field: fixed Count, a count taken from an
	// earlier CountFrom field, or greedy to the end of the payload.
	KindList

	// KindOptional is a group of trailing fields present only when payload
	// bytes remain. Its fields appear directly in the enclosing scope.
	KindOptional

	// KindSwitch selects a sub-schema by the value of an earlier On field
	// and stores its fields as a sub-map under Name. A selector value with
	// no case consumes and produces nothing.
	KindSwitch

	// KindModelID is a model identifier: 2-byte SIG form (model_id) or
	// 4-byte vendor form (vendor_id, model_id), disambiguated by the
	// remaining payload length. Stored as a sub-map under Name.
	KindModelID

	// KindKeyIndices is a packed list of 12-bit key indices, two to three
	// bytes plus a trailing two-byte remainder, consuming the rest of the
	// payload. Stored as a sorted []uint64.
	KindKeyIndices
)

// BitField is one member of a KindBits group. A BitField with an empty
// name is padding: skipped on decode, zero-filled on encode.
type BitField struct {
	Name string
	Bits int
	Enum []uint64
}

// Field is one descriptor in a Schema.
type Field struct {
	Name string
	Kind Kind

	Bits int      // KindUint, KindInt, KindEnum: width in bits
	Size int      // KindBytes, KindBits: width in bytes
	Enum []uint64 // KindEnum: allowed values

	// Min/Max bound KindUint values when MinSet/MaxSet.
	Min    uint64
	Max    uint64
	MinSet bool
	MaxSet bool

	Group     []Field    // KindStruct, KindOptional
	BitFields []BitField // KindBits

	Elem      *Field // KindList element
	ElemAlt   *Field // KindList fallback element when Elem needs more bytes than remain
	Count     int    // KindList: fixed element count
	CountFrom string // KindList: name of the earlier count field

	On    string            // KindSwitch selector field
	Cases map[uint64]Schema // KindSwitch
}

// Schema is an ordered sequence of field descriptors.
type Schema []Field

// Constructor helpers used by the family tables.

func u8(name string) Field  { return Field{Name: name, Kind: KindUint, Bits: 8} }
func u16(name string) Field { return Field{Name: name, Kind: KindUint, Bits: 16} }
func u24(name string) Field { return Field{Name: name, Kind: KindUint, Bits: 24} }
func u32(name string) Field { return Field{Name: name, Kind: KindUint, Bits: 32} }
func u40(name string) Field { return Field{Name: name, Kind: KindUint, Bits: 40} }
func s16(name string) Field { return Field{Name: name, Kind: KindInt, Bits: 16} }
func s32(name string) Field { return Field{Name: name, Kind: KindInt, Bits: 32} }

func u8max(name string, max uint64) Field {
	return Field{Name: name, Kind: KindUint, Bits: 8, Max: max, MaxSet: true}
}

func u16min(name string, min uint64) Field {
	return Field{Name: name, Kind: KindUint, Bits: 16, Min: min, MinSet: true}
}

func u16max(name string, max uint64) Field {
	return Field{Name: name, Kind: KindUint, Bits: 16, Max: max, MaxSet: true}
}

func enum8(name string, values ...uint64) Field {
	return Field{Name: name, Kind: KindEnum, Bits: 8, Enum: values}
}

func blob(name string, size int) Field {
	return Field{Name: name, Kind: KindBytes, Size: size}
}

func tail(name string) Field { return Field{Name: name, Kind: KindBytesTail} }
func str(name string) Field  { return Field{Name: name, Kind: KindString} }

func bits(size int, sub ...BitField) Field {
	return Field{Kind: KindBits, Size: size, BitFields: sub}
}

func bf(name string, width int) BitField { return BitField{Name: name, Bits: width} }
func pad(width int) BitField             { return BitField{Bits: width} }

func structf(name string, sub ...Field) Field {
	return Field{Name: name, Kind: KindStruct, Group: sub}
}

func list(name string, elem Field) Field {
	return Field{Name: name, Kind: KindList, Elem: &elem}
}

func listN(name string, count int, elem Field) Field {
	return Field{Name: name, Kind: KindList, Count: count, Elem: &elem}
}

func countedList(name, countFrom string, elem Field) Field {
	return Field{Name: name, Kind: KindList, CountFrom: countFrom, Elem: &elem}
}

func listAlt(name string, elem, alt Field) Field {
	return Field{Name: name, Kind: KindList, Elem: &elem, ElemAlt: &alt}
}

func optional(sub ...Field) Field {
	return Field{Kind: KindOptional, Group: sub}
}

func switchOn(name, on string, cases map[uint64]Schema) Field {
	return Field{Name: name, Kind: KindSwitch, On: on, Cases: cases}
}

func modelID(name string) Field { return Field{Name: name, Kind: KindModelID} }

func keyIndices(name string) Field { return Field{Name: name, Kind: KindKeyIndices} }

// fixedSize returns the field's encoded size in bytes, or -1 if variable.
func (f *Field) fixedSize() int {
	switch f.Kind {
	case KindUint, KindInt, KindEnum:
		return f.Bits / 8
	case KindBytes, KindBits:
		return f.Size
	case KindStruct:
		total := 0
		for i := range f.Group {
			n := f.Group[i].fixedSize()
			if n < 0 {
				return -1
			}
			total += n
		}
		return total
	default:
		return -1
	}
}

// firstName returns the name of the first named (sub-)field, used to probe
// whether an optional group is present in a value map.
func firstName(fields []Field) string {
	for i := range fields {
		f := &fields[i]
		switch f.Kind {
		case KindBits:
			for _, b := range f.BitFields {
				if b.Name != "" {
					return b.Name
				}
			}
		case KindOptional:
			if n := firstName(f.Group); n != "" {
				return n
			}
		default:
			if f.Name != "" {
				return f.Name
			}
		}
	}
	return ""
}

// uintValue coerces any Go integer to uint64.
func uintValue(v interface{}) (uint64, bool) {
	switch x := v.(type) {
	case uint64:
		return x, true
	case uint32:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case int64:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int32:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int16:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int8:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	}
	return 0, false
}

// intValue coerces any Go integer to int64.
func intValue(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case int16:
		return int64(x), true
	case int8:
		return int64(x), true
	case int:
		return int64(x), true
	case uint64:
		if x > 1<<63-1 {
			return 0, false
		}
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint:
		if uint64(x) > 1<<63-1 {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}

func putUintLE(dst []byte, v uint64) {
	for i := range dst {
		dst[i] = byte(v)
		v >>= 8
	}
}

func uintLE(src []byte) uint64 {
	var v uint64
	for i := len(src) - 1; i >= 0; i-- {
		v = v<<8 | uint64(src[i])
	}
	return v
}

// reader tracks the unconsumed payload during decode.
type reader struct {
	data []byte
}

func (r *reader) remaining() int { return len(r.data) }

func (r *reader) take(n int) ([]byte, error) {
	if len(r.data) < n {
		return nil, ErrTruncated
	}
	b := r.data[:n]
	r.data = r.data[n:]
	return b, nil
}

func (r *reader) rest() []byte {
	b := r.data
	r.data = nil
	return b
}

// encodeFields appends the wire form of fields to dst, reading values from
// vals. Counted-list count fields are derived from the list lengths; a
// caller-supplied count must agree.
func encodeFields(dst []byte, fields []Field, vals Values, prefix string) ([]byte, error) {
	// Derive count fields from their lists up front.
	var counts map[string]uint64
	for i := range fields {
		f := &fields[i]
		if f.Kind != KindList || f.CountFrom == "" {
			continue
		}
		n, err := listLen(f, vals, prefix)
		if err != nil {
			return nil, err
		}
		if counts == nil {
			counts = make(map[string]uint64)
		}
		counts[f.CountFrom] = uint64(n)
	}

	var err error
	for i := range fields {
		f := &fields[i]
		name := prefix + f.Name

		switch f.Kind {
		case KindUint, KindEnum:
			v, ok := vals[f.Name]
			if !ok {
				if derived, isCount := counts[f.Name]; isCount {
					v = derived
					ok = true
				}
			}
			if !ok {
				return nil, fieldErrorf(name, "missing")
			}
			u, ok := uintValue(v)
			if !ok {
				return nil, fieldErrorf(name, "not an unsigned integer: %v", v)
			}
			if derived, isCount := counts[f.Name]; isCount && u != derived {
				return nil, fieldErrorf(name, "count %d does not match list length %d", u, derived)
			}
			if err := checkUintDomain(f, name, u); err != nil {
				return nil, err
			}
			buf := make([]byte, f.Bits/8)
			putUintLE(buf, u)
			dst = append(dst, buf...)

		case KindInt:
			v, ok := vals[f.Name]
			if !ok {
				return nil, fieldErrorf(name, "missing")
			}
			s, ok := intValue(v)
			if !ok {
				return nil, fieldErrorf(name, "not an integer: %v", v)
			}
			min := -(int64(1) << (f.Bits - 1))
			max := int64(1)<<(f.Bits-1) - 1
			if s < min || s > max {
				return nil, fieldErrorf(name, "value %d out of int%d range", s, f.Bits)
			}
			buf := make([]byte, f.Bits/8)
			putUintLE(buf, uint64(s))
			dst = append(dst, buf...)

		case KindBytes:
			b, ok := vals[f.Name].([]byte)
			if !ok {
				return nil, fieldErrorf(name, "missing or not a byte slice")
			}
			if len(b) != f.Size {
				return nil, fieldErrorf(name, "length %d, want %d", len(b), f.Size)
			}
			dst = append(dst, b...)

		case KindBytesTail:
			b, ok := vals[f.Name].([]byte)
			if !ok {
				return nil, fieldErrorf(name, "missing or not a byte slice")
			}
			dst = append(dst, b...)

		case KindString:
			s, ok := vals[f.Name].(string)
			if !ok {
				return nil, fieldErrorf(name, "missing or not a string")
			}
			dst = append(dst, s...)

		case KindBits:
			dst, err = encodeBits(dst, f, vals, prefix)
			if err != nil {
				return nil, err
			}

		case KindStruct:
			sub, ok := vals[f.Name].(map[string]interface{})
			if !ok {
				return nil, fieldErrorf(name, "missing or not a map")
			}
			dst, err = encodeFields(dst, f.Group, sub, name+".")
			if err != nil {
				return nil, err
			}

		case KindList:
			dst, err = encodeList(dst, f, vals, prefix)
			if err != nil {
				return nil, err
			}

		case KindOptional:
			probe := firstName(f.Group)
			if _, present := vals[probe]; !present {
				continue
			}
			dst, err = encodeFields(dst, f.Group, vals, prefix)
			if err != nil {
				return nil, err
			}

		case KindSwitch:
			sel, ok := uintValue(vals[f.On])
			if !ok {
				return nil, fieldErrorf(prefix+f.On, "missing selector")
			}
			sub, hasCase := f.Cases[sel]
			payload, hasPayload := vals[f.Name]
			if !hasCase {
				if hasPayload {
					return nil, fieldErrorf(name, "no payload allowed for selector %#x", sel)
				}
				continue
			}
			m, ok := payload.(map[string]interface{})
			if !hasPayload || !ok {
				return nil, fieldErrorf(name, "missing or not a map")
			}
			dst, err = encodeFields(dst, sub, m, name+".")
			if err != nil {
				return nil, err
			}

		case KindModelID:
			dst, err = encodeModelID(dst, f, vals, name)
			if err != nil {
				return nil, err
			}

		case KindKeyIndices:
			dst, err = encodeKeyIndices(dst, f, vals, name)
			if err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

func checkUintDomain(f *Field, name string, u uint64) error {
	if f.Bits < 64 && u >= 1<<f.Bits {
		return fieldErrorf(name, "value %d does not fit %d bits", u, f.Bits)
	}
	if f.MaxSet && u > f.Max {
		return fieldErrorf(name, "value %d above maximum %d", u, f.Max)
	}
	if f.MinSet && u < f.Min {
		return fieldErrorf(name, "value %d below minimum %d", u, f.Min)
	}
	if f.Kind == KindEnum && !enumHas(f.Enum, u) {
		return fieldErrorf(name, "value %#x not in enumeration", u)
	}
	return nil
}

func enumHas(set []uint64, v uint64) bool {
	for _, e := range set {
		if e == v {
			return true
		}
	}
	return false
}

func encodeBits(dst []byte, f *Field, vals Values, prefix string) ([]byte, error) {
	total := 0
	for _, b := range f.BitFields {
		total += b.Bits
	}
	if total != f.Size*8 {
		return nil, fieldErrorf(prefix+firstNameBits(f), "bit group does not cover %d bytes", f.Size)
	}

	var group uint64
	for _, b := range f.BitFields {
		group <<= b.Bits
		if b.Name == "" {
			continue
		}
		v, ok := uintValue(vals[b.Name])
		if !ok {
			return nil, fieldErrorf(prefix+b.Name, "missing or not an unsigned integer")
		}
		if v >= 1<<b.Bits {
			return nil, fieldErrorf(prefix+b.Name, "value %d does not fit %d bits", v, b.Bits)
		}
		if len(b.Enum) > 0 && !enumHas(b.Enum, v) {
			return nil, fieldErrorf(prefix+b.Name, "value %#x not in enumeration", v)
		}
		group |= v
	}

	buf := make([]byte, f.Size)
	putUintLE(buf, group)
	return append(dst, buf...), nil
}

func firstNameBits(f *Field) string {
	for _, b := range f.BitFields {
		if b.Name != "" {
			return b.Name
		}
	}
	return "_"
}

func listLen(f *Field, vals Values, prefix string) (int, error) {
	switch v := vals[f.Name].(type) {
	case []uint64:
		return len(v), nil
	case []map[string]interface{}:
		return len(v), nil
	default:
		return 0, fieldErrorf(prefix+f.Name, "missing or not a list")
	}
}

func encodeList(dst []byte, f *Field, vals Values, prefix string) ([]byte, error) {
	name := prefix + f.Name
	n, err := listLen(f, vals, prefix)
	if err != nil {
		return nil, err
	}
	if f.Count > 0 && n != f.Count {
		return nil, fieldErrorf(name, "length %d, want %d", n, f.Count)
	}

	switch elems := vals[f.Name].(type) {
	case []uint64:
		for _, e := range elems {
			one := Values{f.Elem.Name: e}
			dst, err = encodeFields(dst, []Field{*f.Elem}, one, name+".")
			if err != nil {
				return nil, err
			}
		}
	case []map[string]interface{}:
		for _, e := range elems {
			elem := f.Elem
			if f.ElemAlt != nil && !mapCovers(e, f.Elem) {
				elem = f.ElemAlt
			}
			if elem.Kind != KindStruct {
				return nil, fieldErrorf(name, "struct list with non-struct element descriptor")
			}
			dst, err = encodeFields(dst, []Field{*elem}, Values{elem.Name: e}, name+".")
			if err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

// mapCovers reports whether every named member of a struct element
// descriptor is present in the value map. Used to pick the short alternate
// form for lists whose elements come in two sizes.
func mapCovers(m map[string]interface{}, elem *Field) bool {
	for i := range elem.Group {
		g := &elem.Group[i]
		switch g.Kind {
		case KindBits:
			for _, b := range g.BitFields {
				if b.Name == "" {
					continue
				}
				if _, ok := m[b.Name]; !ok {
					return false
				}
			}
		default:
			if g.Name == "" {
				continue
			}
			if _, ok := m[g.Name]; !ok {
				return false
			}
		}
	}
	return true
}

func encodeModelID(dst []byte, f *Field, vals Values, name string) ([]byte, error) {
	m, ok := vals[f.Name].(map[string]interface{})
	if !ok {
		return nil, fieldErrorf(name, "missing or not a map")
	}
	mid, ok := uintValue(m["model_id"])
	if !ok || mid > 0xFFFF {
		return nil, fieldErrorf(name+".model_id", "missing or out of range")
	}
	if vid, vendor := m["vendor_id"]; vendor {
		v, ok := uintValue(vid)
		if !ok || v > 0xFFFF {
			return nil, fieldErrorf(name+".vendor_id", "out of range")
		}
		dst = append(dst, byte(v), byte(v>>8))
	}
	return append(dst, byte(mid), byte(mid>>8)), nil
}

func encodeKeyIndices(dst []byte, f *Field, vals Values, name string) ([]byte, error) {
	indices, ok := vals[f.Name].([]uint64)
	if !ok {
		return nil, fieldErrorf(name, "missing or not a []uint64")
	}
	sorted := make([]uint64, len(indices))
	copy(sorted, indices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, idx := range sorted {
		if idx > 0xFFF {
			return nil, fieldErrorf(name, "index %#x does not fit 12 bits", idx)
		}
	}
	i := 0
	for ; i+1 < len(sorted); i += 2 {
		// Two indices per three bytes: first in the high 12 bits.
		packed := sorted[i]<<12 | sorted[i+1]
		dst = append(dst, byte(packed), byte(packed>>8), byte(packed>>16))
	}
	if i < len(sorted) {
		dst = append(dst, byte(sorted[i]), byte(sorted[i]>>8))
	}
	return dst, nil
}

// decodeFields consumes fields from r into vals.
func decodeFields(r *reader, fields []Field, vals Values, prefix string) error {
	for i := range fields {
		f := &fields[i]
		name := prefix + f.Name

		switch f.Kind {
		case KindUint, KindEnum:
			b, err := r.take(f.Bits / 8)
			if err != nil {
				return err
			}
			u := uintLE(b)
			if err := checkUintDomain(f, name, u); err != nil {
				return err
			}
			vals[f.Name] = u

		case KindInt:
			b, err := r.take(f.Bits / 8)
			if err != nil {
				return err
			}
			u := uintLE(b)
			// Sign-extend.
			shift := 64 - f.Bits
			vals[f.Name] = int64(u<<shift) >> shift

		case KindBytes:
			b, err := r.take(f.Size)
			if err != nil {
				return err
			}
			vals[f.Name] = append([]byte(nil), b...)

		case KindBytesTail:
			vals[f.Name] = append([]byte(nil), r.rest()...)

		case KindString:
			vals[f.Name] = string(r.rest())

		case KindBits:
			b, err := r.take(f.Size)
			if err != nil {
				return err
			}
			group := uintLE(b)
			shift := f.Size * 8
			for _, sub := range f.BitFields {
				shift -= sub.Bits
				if sub.Name == "" {
					continue
				}
				v := group >> shift & (1<<sub.Bits - 1)
				if len(sub.Enum) > 0 && !enumHas(sub.Enum, v) {
					return fieldErrorf(prefix+sub.Name, "value %#x not in enumeration", v)
				}
				vals[sub.Name] = v
			}

		case KindStruct:
			sub := make(map[string]interface{})
			if err := decodeFields(r, f.Group, sub, name+"."); err != nil {
				return err
			}
			vals[f.Name] = sub

		case KindList:
			if err := decodeList(r, f, vals, prefix); err != nil {
				return err
			}

		case KindOptional:
			if r.remaining() == 0 {
				continue
			}
			if err := decodeFields(r, f.Group, vals, prefix); err != nil {
				return err
			}

		case KindSwitch:
			sel, ok := uintValue(vals[f.On])
			if !ok {
				return fieldErrorf(prefix+f.On, "selector not decoded")
			}
			sub, hasCase := f.Cases[sel]
			if !hasCase {
				continue
			}
			m := make(map[string]interface{})
			if err := decodeFields(r, sub, m, name+"."); err != nil {
				return err
			}
			vals[f.Name] = m

		case KindModelID:
			m := make(map[string]interface{})
			switch r.remaining() {
			case 2:
				b, _ := r.take(2)
				m["model_id"] = uintLE(b)
			case 4:
				b, _ := r.take(4)
				m["vendor_id"] = uintLE(b[:2])
				m["model_id"] = uintLE(b[2:])
			default:
				if r.remaining() < 2 {
					return ErrTruncated
				}
				return fieldErrorf(name, "%d bytes remaining, want 2 or 4", r.remaining())
			}
			vals[f.Name] = m

		case KindKeyIndices:
			indices := []uint64{}
			for r.remaining() >= 3 {
				b, _ := r.take(3)
				packed := uintLE(b)
				indices = append(indices, packed>>12, packed&0xFFF)
			}
			if r.remaining() == 2 {
				b, _ := r.take(2)
				indices = append(indices, uintLE(b)&0xFFF)
			} else if r.remaining() != 0 {
				return ErrTruncated
			}
			sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
			vals[f.Name] = indices
		}
	}
	return nil
}

func decodeList(r *reader, f *Field, vals Values, prefix string) error {
	name := prefix + f.Name

	count := -1 // greedy
	if f.Count > 0 {
		count = f.Count
	} else if f.CountFrom != "" {
		n, ok := uintValue(vals[f.CountFrom])
		if !ok {
			return fieldErrorf(prefix+f.CountFrom, "count not decoded")
		}
		count = int(n)
	}

	scalarElem := f.Elem.Kind == KindUint || f.Elem.Kind == KindInt || f.Elem.Kind == KindEnum

	var scalars []uint64
	var structs []map[string]interface{}
	if scalarElem {
		scalars = []uint64{}
	} else {
		structs = []map[string]interface{}{}
	}

	for n := 0; count < 0 && r.remaining() > 0 || count >= 0 && n < count; n++ {
		elem := f.Elem
		if f.ElemAlt != nil {
			if need := elem.fixedSize(); need > 0 && r.remaining() < need {
				elem = f.ElemAlt
			}
		}
		one := make(map[string]interface{})
		if err := decodeFields(r, []Field{*elem}, one, name+"."); err != nil {
			return err
		}
		if scalarElem {
			u, _ := uintValue(one[elem.Name])
			scalars = append(scalars, u)
		} else {
			structs = append(structs, one[elem.Name].(map[string]interface{}))
		}
	}

	if scalarElem {
		vals[f.Name] = scalars
	} else {
		vals[f.Name] = structs
	}
	return nil
}
