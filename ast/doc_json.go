package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/astunparse/format"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Document keys. A mapping with KindKey is a grammar node, the others
// each tag a single-entry mapping holding a primitive that plain JSON and
// YAML scalars cannot express.
const (
	KindKey     = "_type"
	BytesKey    = "$bytes"
	ComplexKey  = "$complex"
	IntKey      = "$int"
	FloatKey    = "$float"
	EllipsisKey = "$ellipsis"
)

type loadOpts struct {
	patch     []byte
	canonical bool
}

type LoadOption func(*loadOpts)

// LoadPatch applies an RFC 6902 JSON patch to the document before it is
// decoded. Patched documents are always canonicalized.
func LoadPatch(p []byte) LoadOption {
	return func(o *loadOpts) { o.patch = p }
}

// LoadCanonical reorders the fields of known kinds into declared order.
func LoadCanonical(v bool) LoadOption {
	return func(o *loadOpts) { o.canonical = v }
}

// Load decodes a JSON or YAML tree document.
func Load(d []byte, opts ...LoadOption) (*Node, error) {
	o := &loadOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	n, err := fromDoc(v, "$")
	if err != nil {
		return nil, err
	}
	if o.patch != nil {
		n, err = applyPatch(n, o.patch)
		if err != nil {
			return nil, err
		}
		o.canonical = true
	}
	if o.canonical {
		n = Canonicalize(n)
	}
	return n, nil
}

func applyPatch(n *Node, patch []byte) (*Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: bad patch: %w", ErrLoad, err)
	}
	d, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: could not apply patch: %w", ErrLoad, err)
	}
	return Load(out)
}

// Encode writes n as a tree document in format f.
func Encode(n *Node, w io.Writer, f format.Format) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.JSONFormat:
		buf, err := n.MarshalJSON()
		if err != nil {
			return err
		}
		out := bytes.NewBuffer(nil)
		if err := json.Indent(out, buf, "", "  "); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		out.WriteByte('\n')
		d = out.Bytes()
	case format.YAMLFormat:
		d, err = yaml.Marshal(toDoc(n))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	_, err = w.Write(d)
	return err
}

func (n *Node) MarshalJSON() ([]byte, error) {
	d, err := yaml.MarshalWithOptions(toDoc(n), yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return jsonEscapes(bytes.TrimSpace(d)), nil
}

func (n *Node) UnmarshalJSON(d []byte) error {
	res, err := Load(d)
	if err != nil {
		return err
	}
	*n = *res
	return nil
}

func toDoc(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NoneType:
		return nil
	case StringType:
		return n.String
	case BoolType:
		return n.Bool
	case BytesType:
		return yaml.MapSlice{{Key: BytesKey, Value: latin1(n.String)}}
	case EllipsisType:
		return yaml.MapSlice{{Key: EllipsisKey, Value: true}}
	case ComplexType:
		return yaml.MapSlice{{Key: ComplexKey, Value: floatDoc(*n.Float64)}}
	case NumberType:
		switch {
		case n.Int64 != nil:
			return *n.Int64
		case n.Float64 != nil:
			f := *n.Float64
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return yaml.MapSlice{{Key: FloatKey, Value: floatDoc(f)}}
			}
			return f
		default:
			return yaml.MapSlice{{Key: IntKey, Value: n.Number}}
		}
	case ListType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toDoc(v)
		}
		return res
	case NodeType:
		res := make(yaml.MapSlice, 0, 1+len(n.Fields)+len(n.Attrs))
		res = append(res, yaml.MapItem{Key: KindKey, Value: n.Kind})
		for i, f := range n.Fields {
			res = append(res, yaml.MapItem{Key: f, Value: toDoc(n.Values[i])})
		}
		for i, a := range n.Attrs {
			res = append(res, yaml.MapItem{Key: a, Value: toDoc(n.AttrValues[i])})
		}
		return res
	default:
		panic("type")
	}
}

func floatDoc(f float64) any {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return f
}

func latin1(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteRune(rune(s[i]))
	}
	return sb.String()
}

func fromDoc(v any, path string) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return None(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return FromBigInt(strconv.FormatUint(x, 10)), nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ListType, Values: make([]*Node, len(x))}
		for i, e := range x {
			n, err := fromDoc(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case yaml.MapSlice:
		return fromMapSlice(x, path)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported value %T", ErrLoad, path, v)
	}
}

func fromMapSlice(m yaml.MapSlice, path string) (*Node, error) {
	if len(m) == 1 {
		key := fmt.Sprint(m[0].Key)
		if strings.HasPrefix(key, "$") {
			return fromTagged(key, m[0].Value, path)
		}
	}
	kind := ""
	for _, item := range m {
		if fmt.Sprint(item.Key) == KindKey {
			s, ok := item.Value.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("%w: %s: %s must be a non-empty string", ErrLoad, path, KindKey)
			}
			kind = s
			break
		}
	}
	if kind == "" {
		return nil, fmt.Errorf("%w: %s: mapping without %s", ErrLoad, path, KindKey)
	}
	res := New(kind)
	order := FieldOrder(kind)
	for _, item := range m {
		key := fmt.Sprint(item.Key)
		if key == KindKey {
			continue
		}
		child, err := fromDoc(item.Value, path+"."+key)
		if err != nil {
			return nil, err
		}
		if IsAttr(key) && !contains(order, key) {
			res.WithAttr(key, child)
			continue
		}
		res.With(key, child)
	}
	return res, nil
}

func contains(vs []string, v string) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

func fromTagged(key string, v any, path string) (*Node, error) {
	switch key {
	case EllipsisKey:
		return Ellipsis(), nil
	case BytesKey:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s must be a string", ErrLoad, path, key)
		}
		d := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xff || r == utf8.RuneError {
				return nil, fmt.Errorf("%w: %s: %s rune %U out of byte range", ErrLoad, path, key, r)
			}
			d = append(d, byte(r))
		}
		return FromBytes(d), nil
	case IntKey:
		s := fmt.Sprint(v)
		if _, err := strconv.ParseFloat(s, 64); err != nil || strings.ContainsAny(s, ".eE") {
			return nil, fmt.Errorf("%w: %s: %s %q is not an integer", ErrLoad, path, key, s)
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i), nil
		}
		return FromBigInt(s), nil
	case FloatKey, ComplexKey:
		f, err := docFloat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %w", ErrLoad, path, key, err)
		}
		if key == ComplexKey {
			return FromComplex(f), nil
		}
		return FromFloat(f), nil
	default:
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrLoad, path, key)
	}
}

func docFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case string:
		switch x {
		case "nan":
			return math.NaN(), nil
		case "inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		}
		return strconv.ParseFloat(x, 64)
	default:
		return 0, fmt.Errorf("unsupported float value %T", v)
	}
}

// jsonEscapes rewrites the escapes the yaml encoder takes from Go string
// syntax (\a, \v, \xhh, \Uhhhhhhhh) into JSON \u escapes.
func jsonEscapes(d []byte) []byte {
	if !bytes.Contains(d, []byte{'\\'}) {
		return d
	}
	res := make([]byte, 0, len(d))
	inStr := false
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c == '"' {
			inStr = !inStr
		}
		if !inStr || c != '\\' || i+1 == len(d) {
			res = append(res, c)
			continue
		}
		i++
		switch d[i] {
		case 'a':
			res = append(res, `\u0007`...)
		case 'v':
			res = append(res, `\u000b`...)
		case 'x':
			res = append(res, `\u00`...)
			res = append(res, d[i+1:i+3]...)
			i += 2
		case 'U':
			r, _ := strconv.ParseUint(string(d[i+1:i+9]), 16, 32)
			r1, r2 := utf16.EncodeRune(rune(r))
			res = fmt.Appendf(res, `\u%04x\u%04x`, r1, r2)
			i += 8
		default:
			res = append(res, '\\', d[i])
		}
	}
	return res
}
